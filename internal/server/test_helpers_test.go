package server

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/hello-svc/hello-svc/internal/config"
)

// newTestApp 构建一个未 Bootstrap 的测试上下文，日志丢弃。
func newTestApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app, err := NewApp(AppOptions{Logger: logger, Config: cfg})
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	return app
}

// newBootstrappedApp 构建并完成 Bootstrap 的测试上下文。
func newBootstrappedApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()

	app := newTestApp(t, mutate)
	if err := Bootstrap(app); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return app
}
