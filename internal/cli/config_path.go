package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"qahistory/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads an explicit config, a discovered one, or the defaults when
// none exists.
func loadConfig(configPath string) (config.Config, error) {
	if strings.TrimSpace(configPath) == "" {
		found, err := config.FindConfigPath("")
		if errors.Is(err, config.ErrConfigNotFound) {
			return defaultConfig(), nil
		}
		if err != nil {
			return config.Config{}, err
		}
		return config.Load(found)
	}
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(resolved)
}

func defaultConfig() config.Config {
	cfg := config.Config{Version: 1}
	config.Normalize(&cfg)
	return cfg
}
