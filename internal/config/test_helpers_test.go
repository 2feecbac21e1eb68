package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig 将 TOML 内容写入临时目录并返回文件路径。
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
	return path
}
