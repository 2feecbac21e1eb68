package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// swapStdStreams 在测试期间用内存缓冲区接管 stdOut/stdErr，便于断言 CLI
// 输出；测试结束时自动还原。返回值可直接读取两路输出。
func swapStdStreams(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()

	out = &bytes.Buffer{}
	errOut = &bytes.Buffer{}

	prevOut, prevErr := stdOut, stdErr
	stdOut, stdErr = out, errOut

	t.Cleanup(func() {
		stdOut, stdErr = prevOut, prevErr
	})

	return out, errOut
}

// configFixture 根据名称生成可复用的 TOML 配置文件，返回其路径。
// "missing.toml" 返回不存在的路径，用于覆盖加载失败分支。
func configFixture(t *testing.T, name string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	switch name {
	case "valid.toml":
		writeFixture(t, path, `
ListenPort = 18080
LogLevel = "error"
`)
	case "invalid.toml":
		writeFixture(t, path, "ListenPort = -1\n")
	case "missing.toml":
		// 故意不创建文件。
	default:
		t.Fatalf("未知的配置夹具: %s", name)
	}

	return path
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入夹具失败: %v", err)
	}
}
