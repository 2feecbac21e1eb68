package logging

import "github.com/sirupsen/logrus"

// BaseFields 构建 action + 配置路径等基础字段，便于不同入口复用。
func BaseFields(action, configPath string) logrus.Fields {
	return logrus.Fields{
		"action":     action,
		"configPath": configPath,
	}
}

// AccessFields 提供请求方法/路径/状态码字段，供访问日志中间件复用。
func AccessFields(requestID, method, path string, status int, durationMS int64) logrus.Fields {
	return logrus.Fields{
		"request_id":  requestID,
		"method":      method,
		"path":        path,
		"status":      status,
		"duration_ms": durationMS,
	}
}
