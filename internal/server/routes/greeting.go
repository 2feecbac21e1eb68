package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hello-svc/hello-svc/internal/auth"
	"github.com/hello-svc/hello-svc/internal/config"
	"github.com/hello-svc/hello-svc/internal/resources"
)

// greetingBody 是根路由的固定响应，逐字节精确，不带结尾空白。
const greetingBody = "Hello World!"

// PluginInfo 描述一个已安装阶段的注册记录。
type PluginInfo struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Status   string `json:"status"`
}

// Deps carries everything route handlers read from the application context.
// The route package never imports the server package, so the dependencies
// arrive as plain values and closures.
type Deps struct {
	Respond     func(fiber.Ctx, string) error
	Schemes     *auth.Registry
	AuthScheme  string
	AuthEnabled bool
	Resources   *resources.Bundle
	Config      *config.Config
	Plugins     func() []PluginInfo
}

// RegisterGreeting 注册根路由。处理器无副作用、无状态，可被任意并发调用。
func RegisterGreeting(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	app.Get("/", func(c fiber.Ctx) error {
		if deps.Respond != nil {
			return deps.Respond(c, greetingBody)
		}
		return c.SendString(greetingBody)
	})
}
