package auth

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

const bearerPrefix = "Bearer "

// Require returns a middleware enforcing the named scheme from the registry.
// Routes that never call Require are untouched by scheme installation.
func Require(registry *Registry, name string) fiber.Handler {
	return func(c fiber.Ctx) error {
		scheme, ok := registry.Resolve(name)
		if !ok {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "auth_scheme_missing",
			})
		}
		token := bearerToken(c)
		if !scheme.Validate(token) {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		return c.Next()
	}
}

// bearerToken 从 Authorization 头解析 Bearer 令牌，缺失或格式不符时返回空串。
func bearerToken(c fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}
