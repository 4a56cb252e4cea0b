package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"qahistory/internal/eval"
	"qahistory/internal/history"
	"qahistory/internal/logging"
	"qahistory/internal/ui/transcript"
)

// runAppend builds the handler for the append command.
func runAppend(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .qahistory/config.yml)")
		question := flags.String("question", "", "Question text")
		answer := flags.String("answer", "", "Answer text")
		evaluation := flags.String("evaluation", "null", "Evaluation as JSON")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		value, err := eval.Parse([]byte(*evaluation))
		if err != nil {
			fmt.Fprintf(stderr, "Invalid --evaluation: %v\n", err)
			return ExitUsage
		}
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		// append never grades, so it must not require a judge API key.
		cfg.Judge.Model = ""
		svc, err := newServices(cfg, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start: %v\n", err)
			return ExitError
		}
		defer func() { _ = svc.Close() }()

		container := transcript.New(stdout, *noColor || !transcript.ColorEnabled(stdout))
		appender := history.NewAppender(container,
			history.WithRecorder(logging.NewRecorder(logging.Named(svc.logger, "history"))))
		if _, err := appender.Append(*question, *answer, value); err != nil {
			var serr *history.SerializationError
			if errors.As(err, &serr) {
				fmt.Fprintf(stderr, "Invalid evaluation: %v\n", err)
				return ExitUsage
			}
			fmt.Fprintf(stderr, "Append failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
