package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"qahistory/internal/history"
	"qahistory/internal/logging"
	"qahistory/internal/server"
)

// serveHTTP is a test seam for running the HTTP server.
var serveHTTP = server.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .qahistory/config.yml)")
		addr := flags.String("addr", "", "Address to listen on (overrides server.addr)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if value := strings.TrimSpace(*addr); value != "" {
			cfg.Server.Addr = value
		}
		svc, err := newServices(cfg, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start: %v\n", err)
			return ExitError
		}
		defer func() { _ = svc.Close() }()

		page := history.NewPage()
		list := history.NewList(cfg.History.ContainerID)
		page.Mount(cfg.History.ContainerID, list)
		appender := history.NewPageAppender(page, cfg.History.ContainerID,
			history.WithRecorder(logging.NewRecorder(logging.Named(svc.logger, "history"))))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(stdout, "Serving practice page at http://%s\n", cfg.Server.Addr)
		if err := serveHTTP(ctx, server.Config{
			Addr:     cfg.Server.Addr,
			Appender: appender,
			View:     list,
			Scorer:   svc.scorer,
			Log:      logging.Named(svc.logger, ""),
		}); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
