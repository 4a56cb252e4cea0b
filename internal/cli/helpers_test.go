package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const offlineConfig = `version: 1
server:
  addr: "127.0.0.1:5050"
log:
  level: "warn"
`

// writeConfig writes contents to a config file under a temp dir and returns its path.
func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".qahistory", "config.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// stubEnv replaces lookupEnv for the duration of the test.
func stubEnv(t *testing.T, values map[string]string) {
	t.Helper()
	orig := lookupEnv
	lookupEnv = func(key string) string { return values[key] }
	t.Cleanup(func() { lookupEnv = orig })
}
