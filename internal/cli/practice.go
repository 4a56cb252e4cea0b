package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"qahistory/internal/history"
	"qahistory/internal/logging"
	"qahistory/internal/question"
	"qahistory/internal/ui/practice"
	"qahistory/internal/ui/transcript"
)

// practiceInput allows tests to override stdin for the practice session.
var practiceInput io.Reader = os.Stdin

// runPracticeSession is a test seam for the interactive program.
var runPracticeSession = practice.Run

// runPractice builds the handler for the practice command.
func runPractice(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .qahistory/config.yml)")
		noJudge := flags.Bool("no-judge", false, "Score with ROUGE only")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		questionsPath := flags.String("questions", "", "Question bank file (YAML or JSON)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		var bank question.Bank
		if path := strings.TrimSpace(*questionsPath); path != "" {
			loaded, err := question.LoadBank(path)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
				return ExitError
			}
			bank = loaded
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *noJudge {
			cfg.Judge.Model = ""
		}
		// The session owns the terminal; logs go to the configured file or nowhere.
		svc, err := newServices(cfg, io.Discard)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start: %v\n", err)
			return ExitError
		}
		defer func() { _ = svc.Close() }()

		list := history.NewList(cfg.History.ContainerID)
		appender := history.NewAppender(list,
			history.WithRecorder(logging.NewRecorder(logging.Named(svc.logger, "history"))))
		model := practice.New(context.Background(), svc.scorer, appender, list,
			*noColor || !transcript.ColorEnabled(stdout)).WithQuestions(bank.Questions)
		if err := runPracticeSession(context.Background(), model, practiceInput, stdout); err != nil {
			fmt.Fprintf(stderr, "Practice session failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "%d answers recorded\n", list.Len())
		return ExitOK
	}
}
