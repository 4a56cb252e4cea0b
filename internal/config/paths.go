package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = ".qahistory"
	ConfigFileName = "config.yml"
)

// ErrConfigNotFound reports that no config file exists in the searched tree.
var ErrConfigNotFound = errors.New("config not found")

// ConfigPath returns the full config file path under root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// FindConfigPath walks from startDir (default: the working directory) up to
// the filesystem root and returns the first config file found. A .qahistory
// directory without a config file stops the search with an error.
func FindConfigPath(startDir string) (string, error) {
	dir, err := searchStart(startDir)
	if err != nil {
		return "", err
	}
	for {
		path, err := configIn(dir)
		if err != nil || path != "" {
			return path, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or its parents", ErrConfigNotFound, filepath.Join(ConfigDirName, ConfigFileName), startDirLabel(startDir))
		}
		dir = parent
	}
}

func searchStart(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	return abs, nil
}

// configIn returns the config path under dir, or "" when dir has no .qahistory.
func configIn(dir string) (string, error) {
	configDir := filepath.Join(dir, ConfigDirName)
	dirInfo, err := os.Stat(configDir)
	switch {
	case os.IsNotExist(err):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("stat %q: %w", configDir, err)
	case !dirInfo.IsDir():
		return "", nil
	}
	path := filepath.Join(configDir, ConfigFileName)
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("found %q but %s is missing", configDir, ConfigFileName)
	case err != nil:
		return "", fmt.Errorf("stat config path %q: %w", path, err)
	case info.IsDir():
		return "", fmt.Errorf("config path %q is a directory", path)
	}
	return path, nil
}

func startDirLabel(startDir string) string {
	if strings.TrimSpace(startDir) == "" {
		return "the working directory"
	}
	return startDir
}
