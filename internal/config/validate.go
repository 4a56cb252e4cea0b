package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

var logLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "warning": {}, "error": {}, "fatal": {}, "panic": {},
}

// Validate checks a normalized config.
func Validate(cfg Config) error {
	collector := &issueCollector{}
	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if _, _, err := net.SplitHostPort(cfg.Server.Addr); err != nil {
		collector.add("server.addr", fmt.Sprintf("invalid address %q", cfg.Server.Addr))
	}
	if strings.ContainsAny(cfg.History.ContainerID, " \t\"'<>") {
		collector.add("history.container_id", fmt.Sprintf("invalid element id %q", cfg.History.ContainerID))
	}

	if _, ok := logLevels[cfg.Log.Level]; !ok {
		collector.add("log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		collector.add("log.format", fmt.Sprintf("unsupported format %q", cfg.Log.Format))
	}

	if cfg.Judge.Enabled() {
		parsed, err := url.Parse(cfg.Judge.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			collector.add("judge.base_url", fmt.Sprintf("invalid url %q", cfg.Judge.BaseURL))
		}
		if cfg.Judge.Temperature != nil && (*cfg.Judge.Temperature < 0 || *cfg.Judge.Temperature > 2) {
			collector.add("judge.temperature", "must be between 0 and 2")
		}
	}
	return collector.result()
}
