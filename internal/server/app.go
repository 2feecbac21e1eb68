package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/hello-svc/hello-svc/internal/auth"
	"github.com/hello-svc/hello-svc/internal/config"
	"github.com/hello-svc/hello-svc/internal/resources"
)

// Responder renders a handler payload according to the negotiated encoding.
// It is installed by the serialization stage during Bootstrap.
type Responder func(fiber.Ctx, string) error

// AppOptions controls how the application context is constructed.
type AppOptions struct {
	Logger *logrus.Logger
	Config *config.Config
}

// App is the shared application context every configuration stage mutates.
// After Bootstrap completes its structure is frozen: the engine reads it
// concurrently from request handlers, so no field may change once serving
// has begun.
type App struct {
	engine *fiber.App
	logger *logrus.Logger
	cfg    *config.Config

	bundle        *resources.Bundle
	schemes       *auth.Registry
	respond       Responder
	errorMappings []ErrorMapping
	records       []PluginRecord
	bootstrapped  bool
}

// NewApp builds an unconfigured application context around a Fiber engine.
// The engine carries the sonic JSON codec and panic recovery from the start;
// everything else is added by the Bootstrap stages.
func NewApp(opts AppOptions) (*App, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if port := opts.Config.Global.ListenPort; port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid listen port: %d", port)
	}

	app := &App{
		logger:  opts.Logger,
		cfg:     opts.Config,
		schemes: auth.NewRegistry(),
	}

	app.engine = fiber.New(fiber.Config{
		CaseSensitive: true,
		JSONEncoder:   sonic.Marshal,
		JSONDecoder:   sonic.Unmarshal,
		ErrorHandler:  app.handleError,
	})
	app.engine.Use(recover.New())

	return app, nil
}

// Engine exposes the underlying Fiber application for route registration.
func (a *App) Engine() *fiber.App {
	return a.engine
}

// Logger returns the structured logger shared by all stages.
func (a *App) Logger() *logrus.Logger {
	return a.logger
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Resources returns the bundle loaded by the resource stage; nil before it runs.
func (a *App) Resources() *resources.Bundle {
	return a.bundle
}

// AuthSchemes returns this instance's authentication scheme registry.
func (a *App) AuthSchemes() *auth.Registry {
	return a.schemes
}

// Records returns registration records of the stages installed so far.
func (a *App) Records() []PluginRecord {
	out := make([]PluginRecord, len(a.records))
	copy(out, a.records)
	return out
}

// Listen 启动监听循环；仅允许在 Bootstrap 成功之后调用。
func (a *App) Listen(addr string) error {
	if !a.bootstrapped {
		return errors.New("refusing to serve before bootstrap")
	}
	return a.engine.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// ShutdownWithContext 停止接收新连接并等待在途请求结束或超时。
func (a *App) ShutdownWithContext(ctx context.Context) error {
	return a.engine.ShutdownWithContext(ctx)
}

// Test drives an in-memory request through the engine, mirroring Listen
// behavior without opening a socket.
func (a *App) Test(req *http.Request) (*http.Response, error) {
	return a.engine.Test(req)
}
