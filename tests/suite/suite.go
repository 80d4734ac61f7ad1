package suite

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"eterno_memorial/internal/app"
	"eterno_memorial/internal/config"
)

type Suite struct {
	*testing.T
	Cfg     *config.Config
	App     *app.App
	Backend *Backend
}

// New spins up an in-memory backend and an application wired against it.
// Each test gets its own backend, so suites can run in parallel.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	t.Parallel()

	backend := NewBackend()
	server := httptest.NewServer(backend.Handler())

	cfg := &config.Config{
		Env: "local",
		API: config.APIConfig{
			BaseURL:   server.URL,
			Timeout:   5 * time.Second,
			UserAgent: "eterno-memorial-tests",
		},
		Comments: config.CommentsConfig{PerPage: 5},
		Media: config.MediaConfig{
			MaxVideoSize:      50 * 1024 * 1024,
			AllowedVideoTypes: []string{"video/mp4", "video/webm", "video/quicktime"},
		},
		Session: config.SessionConfig{Backend: "memory"},
		Cache:   config.CacheConfig{TTL: 30 * time.Second, CleanupInterval: time.Minute},
	}

	application, err := app.New(slog.New(slog.NewTextHandler(testWriter{t}, nil)), cfg)
	if err != nil {
		t.Fatalf("app: %v", err)
	}

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Minute)

	t.Cleanup(func() {
		t.Helper()
		cancelCtx()
		_ = application.Close()
		server.Close()
	})

	return ctx, &Suite{
		T:       t,
		Cfg:     cfg,
		App:     application,
		Backend: backend,
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
