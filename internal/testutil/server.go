package testutil

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"qahistory/internal/history"
	"qahistory/internal/server"
)

// ServerConfig wires dependencies for StartServer.
type ServerConfig struct {
	Scorer   server.Scorer
	Recorder history.Recorder
	Options  []history.Option
}

// ServerInstance represents a running HTTP test server.
type ServerInstance struct {
	BaseURL string
	List    *history.List
	Page    *history.Page
	Close   func()
}

// StartServer launches an in-memory practice server backed by a mounted history list.
func StartServer(t *testing.T, cfg ServerConfig) *ServerInstance {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	page := history.NewPage()
	list := history.NewList(history.DefaultContainerID)
	page.Mount(history.DefaultContainerID, list)
	opts := cfg.Options
	if cfg.Recorder != nil {
		opts = append(opts, history.WithRecorder(cfg.Recorder))
	}
	handler, err := server.NewHandler(server.Config{
		Appender: history.NewPageAppender(page, history.DefaultContainerID, opts...),
		View:     list,
		Scorer:   cfg.Scorer,
		Log:      logrus.NewEntry(logger),
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &ServerInstance{
		BaseURL: srv.URL,
		List:    list,
		Page:    page,
		Close:   srv.Close,
	}
}
