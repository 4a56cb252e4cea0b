package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the log level, format, and destination.
type Config struct {
	Level  string
	Format string
	File   string
}

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from cfg. Output goes to File when set, otherwise to
// fallback. The returned closer releases the log file.
func New(cfg Config, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	level := strings.TrimSpace(cfg.Level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	logger.SetLevel(parsed)

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	if path := strings.TrimSpace(cfg.File); path != "" {
		file, err := openLogFile(path)
		if err != nil {
			return nil, nil, err
		}
		logger.SetOutput(file)
		return logger, file, nil
	}
	if fallback == nil {
		fallback = os.Stderr
	}
	logger.SetOutput(fallback)
	return logger, nopCloser{}, nil
}

// Named returns an entry tagged with the component field.
func Named(logger *logrus.Logger, component string) *logrus.Entry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	entry := logrus.NewEntry(logger)
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return file, nil
}

// Recorder writes trace messages at info level.
type Recorder struct {
	entry *logrus.Entry
}

// NewRecorder wraps entry. A nil entry logs through the standard logger.
func NewRecorder(entry *logrus.Entry) *Recorder {
	if entry == nil {
		entry = Named(nil, "history")
	}
	return &Recorder{entry: entry}
}

// Record logs message.
func (r *Recorder) Record(message string) {
	r.entry.Info(message)
}
