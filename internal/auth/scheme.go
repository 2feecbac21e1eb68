package auth

import (
	"crypto/subtle"
	"strings"
)

// Scheme describes a named authentication scheme routes can opt into.
// Installing a scheme never rejects traffic on its own; only handlers
// wrapped by Require consult it.
type Scheme struct {
	Name        string
	Description string
	Validate    TokenValidator
}

// TokenValidator reports whether a presented credential is acceptable.
type TokenValidator func(token string) bool

// NewTokenScheme 构建基于静态令牌列表的方案；空列表表示拒绝一切凭证。
// 比较使用常量时间算法，避免通过响应耗时猜测令牌前缀。
func NewTokenScheme(name string, tokens []string) Scheme {
	accepted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			accepted = append(accepted, trimmed)
		}
	}

	return Scheme{
		Name:        name,
		Description: "static bearer token validation",
		Validate: func(token string) bool {
			if token == "" {
				return false
			}
			for _, candidate := range accepted {
				if subtle.ConstantTimeCompare([]byte(candidate), []byte(token)) == 1 {
					return true
				}
			}
			return false
		},
	}
}
