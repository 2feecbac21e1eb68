package server

import (
	"errors"
	"fmt"
)

// ErrAlreadyBootstrapped indicates Bootstrap ran twice on the same context.
var ErrAlreadyBootstrapped = errors.New("application already bootstrapped")

// Plugins returns the configuration stages in their required order. Later
// stages wrap or observe what earlier ones installed: routing registers
// handlers behind the monitoring middleware, and the status-page fallback
// must trail every route.
func Plugins() []Plugin {
	return []Plugin{
		resourcesPlugin(),
		securityPlugin(),
		serializationPlugin(),
		monitoringPlugin(),
		routingPlugin(),
		statusPagesPlugin(),
	}
}

// Bootstrap 依固定顺序安装全部阶段；任何一步失败立即中止，不允许以
// 半配置状态对外服务。同一上下文重复调用返回 ErrAlreadyBootstrapped。
func Bootstrap(app *App) error {
	if app == nil {
		return errors.New("app is required")
	}
	if app.bootstrapped {
		return ErrAlreadyBootstrapped
	}

	if err := runPlugins(app, Plugins()); err != nil {
		return err
	}

	app.bootstrapped = true
	return nil
}

func runPlugins(app *App, plugins []Plugin) error {
	for i, plugin := range plugins {
		if err := plugin.Install(app); err != nil {
			return fmt.Errorf("configure %s: %w", plugin.Name, err)
		}
		app.records = append(app.records, PluginRecord{
			Name:     plugin.Name,
			Position: i + 1,
			Status:   recordStatusInstalled,
		})
	}
	return nil
}
