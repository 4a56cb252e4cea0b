package config

// Config is the qahistory configuration file schema.
type Config struct {
	Version int           `yaml:"version"`
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
	Judge   JudgeConfig   `yaml:"judge"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// HistoryConfig configures the conversation history container.
type HistoryConfig struct {
	ContainerID string `yaml:"container_id"`
}

// LogConfig configures logrus output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// JudgeConfig configures the OpenAI-compatible grading model. An empty
// model disables the judge.
type JudgeConfig struct {
	BaseURL     string   `yaml:"base_url"`
	Model       string   `yaml:"model"`
	APIKeyEnv   string   `yaml:"api_key_env"`
	Temperature *float64 `yaml:"temperature"`
}

// Enabled reports whether a judge model is configured.
func (c JudgeConfig) Enabled() bool {
	return c.Model != ""
}
