package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hello-svc/hello-svc/internal/auth"
	"github.com/hello-svc/hello-svc/internal/logging"
	"github.com/hello-svc/hello-svc/internal/resources"
	"github.com/hello-svc/hello-svc/internal/server/routes"
)

// resourcesPlugin 在其余阶段之前载入静态资源，后续阶段可直接读取。
func resourcesPlugin() Plugin {
	return Plugin{
		Name: "resources",
		Install: func(app *App) error {
			bundle, err := resources.Load(app.cfg.Global.ResourcePath)
			if err != nil {
				return err
			}
			app.bundle = bundle

			fields := logging.BaseFields("load_resources", app.cfg.Global.ResourcePath)
			fields["count"] = bundle.Len()
			app.logger.WithFields(fields).Debug("资源加载完成")
			return nil
		},
	}
}

// securityPlugin 注册命名认证方案。安装本身不拦截任何请求，只有显式
// 通过 auth.Require 声明的路由才会启用校验。
func securityPlugin() Plugin {
	return Plugin{
		Name: "security",
		Install: func(app *App) error {
			scheme := auth.NewTokenScheme(app.cfg.Auth.Scheme, app.cfg.Auth.Tokens)
			return app.schemes.Register(scheme)
		},
	}
}

// serializationPlugin 安装内容协商规则：显式要求 application/json 时输出
// JSON，其余情况输出 text/plain。规则只决定编码，从不改写处理器状态码。
func serializationPlugin() Plugin {
	return Plugin{
		Name: "serialization",
		Install: func(app *App) error {
			app.respond = func(c fiber.Ctx, payload string) error {
				if c.Accepts(fiber.MIMETextPlain, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
					return c.JSON(payload)
				}
				return c.SendString(payload)
			}
			return nil
		},
	}
}

// monitoringPlugin 安装访问日志中间件，必须先于路由注册以覆盖全部请求。
func monitoringPlugin() Plugin {
	return Plugin{
		Name: "monitoring",
		Install: func(app *App) error {
			app.engine.Use(accessLogMiddleware(app))
			return nil
		},
	}
}

// routingPlugin 注册问候路由与 /-/ 诊断路由。
func routingPlugin() Plugin {
	return Plugin{
		Name: "routing",
		Install: func(app *App) error {
			deps := routes.Deps{
				Respond:     app.responder(),
				Schemes:     app.schemes,
				AuthScheme:  app.cfg.Auth.Scheme,
				AuthEnabled: app.cfg.Auth.Enabled(),
				Resources:   app.bundle,
				Config:      app.cfg,
				Plugins:     app.pluginInfo,
			}
			routes.RegisterGreeting(app.engine, deps)
			routes.RegisterDiagnostics(app.engine, deps)
			return nil
		},
	}
}

// statusPagesPlugin 安装未匹配路径的 404 兜底规则，并保留错误映射扩展点。
// 它必须位于路由之后，否则兜底会吞掉已注册的路径。
func statusPagesPlugin() Plugin {
	return Plugin{
		Name: "status-pages",
		Install: func(app *App) error {
			app.engine.Use(notFoundHandler)
			return nil
		},
	}
}

// responder 返回已安装的协商函数；序列化阶段缺席时退回纯文本输出。
func (a *App) responder() Responder {
	if a.respond != nil {
		return a.respond
	}
	return func(c fiber.Ctx, payload string) error {
		return c.SendString(payload)
	}
}

// pluginInfo 为诊断端提供注册记录快照。Bootstrap 结束后记录不再变化，
// 请求期间读取是安全的。
func (a *App) pluginInfo() []routes.PluginInfo {
	if len(a.records) == 0 {
		return nil
	}
	out := make([]routes.PluginInfo, 0, len(a.records))
	for _, record := range a.records {
		out = append(out, routes.PluginInfo{
			Name:     record.Name,
			Position: record.Position,
			Status:   record.Status,
		})
	}
	return out
}
