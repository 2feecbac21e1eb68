package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"
)

// ErrorMapping 将处理器返回的错误映射为状态码；返回 false 表示不认领。
type ErrorMapping func(error) (int, bool)

// RegisterErrorMapping 追加一条自定义错误映射。默认配置不注册任何映射，
// 未被认领的错误交由引擎默认行为处理（通常 500）。
// 仅允许在 Bootstrap 完成前调用，服务开始后映射表必须保持不变。
func (a *App) RegisterErrorMapping(mapping ErrorMapping) error {
	if a.bootstrapped {
		return errors.New("error mappings are frozen after bootstrap")
	}
	if mapping == nil {
		return errors.New("mapping is required")
	}
	a.errorMappings = append(a.errorMappings, mapping)
	return nil
}

// statusForError 依次询问自定义映射，再回退到 fiber.Error 携带的状态码，
// 最后兜底 500。访问日志与错误处理器共用这一套推断。
func (a *App) statusForError(err error) int {
	for _, mapping := range a.errorMappings {
		if code, ok := mapping(err); ok {
			return code
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// handleError 是注入 Fiber 的统一错误出口。
func (a *App) handleError(c fiber.Ctx, err error) error {
	return renderError(c, a.statusForError(err))
}

// notFoundHandler 兜底所有未匹配路由表的请求。
func notFoundHandler(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "not_found",
		"path":  c.Path(),
	})
}

func renderError(c fiber.Ctx, code int) error {
	return c.Status(code).JSON(fiber.Map{
		"error":  "request_failed",
		"status": code,
	})
}
