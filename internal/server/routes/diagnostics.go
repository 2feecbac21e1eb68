package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hello-svc/hello-svc/internal/auth"
	"github.com/hello-svc/hello-svc/internal/version"
)

// RegisterDiagnostics 暴露 /-/ 前缀的诊断接口，供 SRE 查询实例状态。
func RegisterDiagnostics(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	app.Get("/-/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/-/version", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"version": version.Version,
			"commit":  version.Commit,
			"full":    version.Full(),
		})
	})

	app.Get("/-/plugins", func(c fiber.Ctx) error {
		payload := fiber.Map{
			"plugins": pluginSnapshot(deps),
		}
		if deps.Schemes != nil {
			payload["auth_schemes"] = deps.Schemes.Names()
		}
		if deps.Resources != nil {
			payload["resources"] = fiber.Map{
				"count": deps.Resources.Len(),
				"names": deps.Resources.Names(),
			}
		}
		return c.JSON(payload)
	})

	// /-/config 会输出运行参数摘要，仅在配置了令牌时开放并要求认证。
	if deps.AuthEnabled && deps.Schemes != nil {
		app.Get("/-/config", configSummaryHandler(deps), auth.Require(deps.Schemes, deps.AuthScheme))
	}
}

// configSummaryHandler 输出脱敏后的配置摘要，绝不回显令牌本身。
func configSummaryHandler(deps Deps) fiber.Handler {
	return func(c fiber.Ctx) error {
		if deps.Config == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "config_unavailable",
			})
		}
		g := deps.Config.Global
		return c.JSON(fiber.Map{
			"listen_port":      g.ListenPort,
			"log_level":        g.LogLevel,
			"resource_path":    g.ResourcePath,
			"shutdown_timeout": g.ShutdownTimeout.DurationValue().String(),
			"auth_mode":        deps.Config.Auth.AuthMode(),
			"auth_scheme":      deps.AuthScheme,
		})
	}
}

func pluginSnapshot(deps Deps) []PluginInfo {
	if deps.Plugins == nil {
		return nil
	}
	return deps.Plugins()
}
