package config

import (
	"testing"
	"time"
)

func TestDurationUnmarshalText(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"30s", 30 * time.Second},
		{"5m", 5 * time.Minute},
		{"45", 45 * time.Second},
		{"0x10", 16 * time.Second},
	}

	for _, tc := range cases {
		var d Duration
		if err := d.UnmarshalText([]byte(tc.raw)); err != nil {
			t.Fatalf("解析 %q 失败: %v", tc.raw, err)
		}
		if d.DurationValue() != tc.want {
			t.Fatalf("%q 应解析为 %v，得到 %v", tc.raw, tc.want, d.DurationValue())
		}
	}
}

func TestDurationUnmarshalTextRejectsGarbage(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("not-a-duration")); err == nil {
		t.Fatalf("非法字符串应返回错误")
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Global.LogLevel = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatalf("未知日志级别应返回错误")
	}
}

func TestValidateRejectsEmptySchemeName(t *testing.T) {
	cfg := Default()
	cfg.Auth.Scheme = "   "

	if err := cfg.Validate(); err == nil {
		t.Fatalf("空方案名应返回错误")
	}
}

func TestValidateRejectsBlankToken(t *testing.T) {
	cfg := Default()
	cfg.Auth.Tokens = []string{"ok", "  "}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("空令牌应返回错误")
	}
}

func TestValidateRejectsNonPositiveShutdownTimeout(t *testing.T) {
	cfg := Default()
	cfg.Global.ShutdownTimeout = Duration(0)

	if err := cfg.Validate(); err == nil {
		t.Fatalf("关停超时必须大于 0")
	}
}

func TestAuthModeAnonymous(t *testing.T) {
	cfg := Default()
	if cfg.Auth.AuthMode() != "anonymous" {
		t.Fatalf("无令牌时应输出 anonymous，得到 %s", cfg.Auth.AuthMode())
	}
}
