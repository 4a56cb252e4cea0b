package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
server:
  addr: "127.0.0.1:5000"

history:
  container_id: "conversation-history"

log:
  level: "info"
  format: "text"
  # file: ".qahistory/qahistory.log"

judge:
  base_url: "https://api.groq.com/openai/v1"
  model: "llama-3.3-70b-versatile"
  api_key_env: "GROQ_API_KEY"
  temperature: 0.2
`

// Scaffold writes the default config to path, refusing to overwrite.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
