package config

import (
	"errors"
	"strings"
)

var supportedLogLevels = map[string]struct{}{
	"trace": {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
	"fatal": {},
	"panic": {},
}

const supportedLogLevelList = "trace|debug|info|warn|error|fatal|panic"

// Validate 针对语义级别做进一步校验，防止非法配置启动服务。
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("配置为空")
	}

	g := c.Global
	if g.ListenPort <= 0 || g.ListenPort > 65535 {
		return newFieldError("Global.ListenPort", "必须在 1-65535")
	}
	if _, ok := supportedLogLevels[strings.ToLower(g.LogLevel)]; !ok {
		return newFieldError("Global.LogLevel", "仅支持 "+supportedLogLevelList)
	}
	if g.LogMaxSize < 0 {
		return newFieldError("Global.LogMaxSize", "不能为负数")
	}
	if g.LogMaxBackups < 0 {
		return newFieldError("Global.LogMaxBackups", "不能为负数")
	}
	if g.ShutdownTimeout.DurationValue() <= 0 {
		return newFieldError("Global.ShutdownTimeout", "必须大于 0")
	}

	return c.Auth.validate()
}

func (a AuthConfig) validate() error {
	if strings.TrimSpace(a.Scheme) == "" {
		return newFieldError(authField("Scheme"), "不能为空")
	}
	for _, token := range a.Tokens {
		if strings.TrimSpace(token) == "" {
			return newFieldError(authField("Tokens"), "令牌不能为空字符串")
		}
	}
	return nil
}
