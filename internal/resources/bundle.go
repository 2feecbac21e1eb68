package resources

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Bundle 保存启动阶段加载的静态资源，服务期间只读。
type Bundle struct {
	root    string
	entries map[string][]byte
}

// Load 遍历资源目录并将全部文件读入内存；目录为空字符串时返回空 Bundle。
// 资源在启动后不再变化，因此一次性读入比按需打开文件更容易保证并发安全。
func Load(root string) (*Bundle, error) {
	bundle := &Bundle{root: root, entries: make(map[string][]byte)}
	if root == "" {
		return bundle, nil
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("资源目录不可用: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("资源路径不是目录: %s", root)
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		bundle.entries[filepath.ToSlash(rel)] = data
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("加载资源失败: %w", walkErr)
	}

	return bundle, nil
}

// Lookup 返回指定相对路径的资源内容。
func (b *Bundle) Lookup(name string) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	data, ok := b.entries[strings.TrimPrefix(filepath.ToSlash(name), "./")]
	return data, ok
}

// Names 返回按字典序排列的资源名列表，供诊断端展示。
func (b *Bundle) Names() []string {
	if b == nil || len(b.entries) == 0 {
		return nil
	}
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len 返回已加载的资源数量。
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Root 返回资源目录的根路径，空字符串表示未配置。
func (b *Bundle) Root() string {
	if b == nil {
		return ""
	}
	return b.root
}
