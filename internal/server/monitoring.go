package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hello-svc/hello-svc/internal/logging"
)

const contextKeyRequestID = "_hellosvc_request_id"

// accessLogMiddleware 为每个请求生成 request ID 并记录方法/路径/状态码。
// 下游 panic 在这里落盘后转换为 error，保证处理器故障始终留下访问日志；
// 观察器自身的故障则被吞掉并降级，绝不影响响应。
func accessLogMiddleware(app *App) fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		reqID := uuid.NewString()
		c.Locals(contextKeyRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("handler panic: %v", r)
			}

			status := c.Response().StatusCode()
			if err != nil {
				// 错误处理器此时尚未运行，按同一套映射推断最终状态码。
				status = app.statusForError(err)
			}
			observe(app.logger, reqID, c.Method(), c.Path(), status, time.Since(start))
		}()

		return c.Next()
	}
}

// observe 记录单次请求；panic 会被捕获，避免观察器故障影响客户端。
func observe(logger *logrus.Logger, reqID, method, path string, status int, elapsed time.Duration) {
	defer func() {
		_ = recover()
	}()

	fields := logging.AccessFields(reqID, method, path, status, elapsed.Milliseconds())
	logger.WithFields(fields).Info("request_completed")
}

// RequestID returns the identifier stored by the monitoring middleware.
func RequestID(c fiber.Ctx) string {
	if value := c.Locals(contextKeyRequestID); value != nil {
		if reqID, ok := value.(string); ok {
			return reqID
		}
	}
	return ""
}
