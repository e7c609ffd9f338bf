// Package scan 实现排除过滤和文件遍历。
package scan

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultExclude 固定生效的内置排除模式，用户 exclude 只做追加。
var defaultExclude = []string{
	".git", ".svn", ".hg",
	"node_modules", "vendor", "dist", "build", "target",
	"__pycache__", ".venv", "venv",
	".mypy_cache", ".pytest_cache", ".ruff_cache", ".tox",
	"*.lock", "package-lock.json", "yarn.lock",
	"*.pyc", "*.pyo", ".DS_Store",
}

// Filter 判定路径是否应跳过，模式区分大小写。
type Filter struct {
	patterns []string
}

func NewFilter(userPatterns []string) *Filter {
	ps := make([]string, 0, len(defaultExclude)+len(userPatterns))
	ps = append(ps, defaultExclude...)
	ps = append(ps, userPatterns...)
	return &Filter{patterns: ps}
}

// ShouldSkip 用 doublestar 语义把每个模式同时对相对路径和末级名匹配，
// 命中任意一个即跳过。
func (f *Filter) ShouldSkip(rel, name string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range f.patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Walk 深度优先惰性产出常规文件路径。目录命中过滤器整棵剪掉，软链接
// 一律不跟随。根路径本身是文件时绕过目录剪枝，只按名字/相对路径匹配排除。
// 产出的 error 是遍历级问题（根不存在、walk I/O 失败），由调用方一次性上报。
func Walk(paths []string, cwd string, filter *Filter) iter.Seq2[string, error] {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	return func(yield func(string, error) bool) {
		for _, root := range paths {
			info, err := os.Lstat(root)
			if err != nil {
				if !yield("", fmt.Errorf("无法访问路径 %s：%w", root, err)) {
					return
				}
				continue
			}
			if info.Mode()&os.ModeSymlink != 0 {
				continue
			}
			if !info.IsDir() {
				if !info.Mode().IsRegular() {
					continue
				}
				if filter.ShouldSkip(relTo(cwd, root), filepath.Base(root)) {
					continue
				}
				if !yield(root, nil) {
					return
				}
				continue
			}
			stopped := false
			_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, werr error) error {
				if werr != nil {
					if !yield("", fmt.Errorf("遍历 %s 失败：%w", path, werr)) {
						stopped = true
						return fs.SkipAll
					}
					return nil
				}
				name := d.Name()
				rel := relTo(cwd, path)
				if d.IsDir() {
					if filter.ShouldSkip(rel, name) {
						return fs.SkipDir
					}
					return nil
				}
				if d.Type()&os.ModeSymlink != 0 || !d.Type().IsRegular() {
					return nil
				}
				if filter.ShouldSkip(rel, name) {
					return nil
				}
				if !yield(path, nil) {
					stopped = true
					return fs.SkipAll
				}
				return nil
			})
			if stopped {
				return
			}
		}
	}
}

func relTo(cwd, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
