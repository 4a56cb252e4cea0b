package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultAddr        = "127.0.0.1:5000"
	DefaultContainerID = "conversation-history"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultAPIKeyEnv   = "GROQ_API_KEY"
	DefaultJudgeURL    = "https://api.groq.com/openai/v1"
	DefaultTemperature = 0.2
)

// Normalize trims values and fills defaults in place.
func Normalize(cfg *Config) {
	cfg.Server.Addr = strings.TrimSpace(cfg.Server.Addr)
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	cfg.History.ContainerID = strings.TrimSpace(cfg.History.ContainerID)
	if cfg.History.ContainerID == "" {
		cfg.History.ContainerID = DefaultContainerID
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)

	cfg.Judge.Model = strings.TrimSpace(cfg.Judge.Model)
	if !cfg.Judge.Enabled() {
		return
	}
	cfg.Judge.BaseURL = strings.TrimSpace(cfg.Judge.BaseURL)
	if cfg.Judge.BaseURL == "" {
		cfg.Judge.BaseURL = DefaultJudgeURL
	}
	cfg.Judge.APIKeyEnv = strings.TrimSpace(cfg.Judge.APIKeyEnv)
	if cfg.Judge.APIKeyEnv == "" {
		cfg.Judge.APIKeyEnv = DefaultAPIKeyEnv
	}
	if cfg.Judge.Temperature == nil {
		temperature := DefaultTemperature
		cfg.Judge.Temperature = &temperature
	}
}
