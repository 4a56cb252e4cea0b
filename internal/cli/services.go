package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"qahistory/internal/config"
	"qahistory/internal/logging"
	"qahistory/internal/scoring"
)

// lookupEnv is a test seam for reading the judge API key.
var lookupEnv = os.Getenv

// services bundles the logger and scorer built from config.
type services struct {
	logger *logrus.Logger
	closer io.Closer
	scorer *scoring.Scorer
}

func (s services) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// newServices builds logging and scoring from cfg. Logs go to stderr unless a
// log file is configured.
func newServices(cfg config.Config, stderr io.Writer) (services, error) {
	logger, closer, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, stderr)
	if err != nil {
		return services{}, err
	}
	judge, err := newJudge(cfg.Judge)
	if err != nil {
		_ = closer.Close()
		return services{}, err
	}
	return services{
		logger: logger,
		closer: closer,
		scorer: scoring.NewScorer(judge, logging.Named(logger, "")),
	}, nil
}

// newJudge returns nil when no judge model is configured.
func newJudge(cfg config.JudgeConfig) (scoring.Judge, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	apiKey := lookupEnv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("judge: environment variable %s is not set", cfg.APIKeyEnv)
	}
	temperature := float32(config.DefaultTemperature)
	if cfg.Temperature != nil {
		temperature = float32(*cfg.Temperature)
	}
	judge, err := scoring.NewOpenAIJudge(scoring.OpenAIConfig{
		APIKey:      apiKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: temperature,
	})
	if err != nil {
		return nil, err
	}
	return judge, nil
}
