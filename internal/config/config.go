// Package config 负责定位并解析 antiseptic 的 TOML 配置。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config 是解析校验后的运行配置，整个运行期间只读。
type Config struct {
	Exclude      []string
	AllowedWords []string
}

// ConfigError 表示配置本身的问题：文件不可读、TOML 语法坏、字段类型不对。
// 属于致命错误，扫描开始前就终止运行。
type ConfigError struct {
	Path string
	Msg  string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

var configNames = []string{"pyproject.toml", "antiseptic.toml", ".antiseptic.toml"}

// Resolve 从 startDir 起逐级向上找配置：每层目录按
// pyproject.toml（需含 [tool.antiseptic] 表）→ antiseptic.toml →
// .antiseptic.toml 的顺序检查，找到第一个即停。
// 一个都没有时返回内置默认值，source 为空串。
func Resolve(startDir string) (Config, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Config{}, "", &ConfigError{Path: startDir, Msg: "无法解析起始目录"}
	}
	for {
		for _, name := range configNames {
			p := filepath.Join(dir, name)
			table, ok, err := loadTable(p, name == "pyproject.toml")
			if err != nil {
				return Config{}, "", err
			}
			if !ok {
				continue
			}
			cfg, err := fromTable(p, table)
			if err != nil {
				return Config{}, "", err
			}
			return cfg, p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Config{}, "", nil
		}
		dir = parent
	}
}

// loadTable 读取并解析一个候选配置文件。文件不存在不算错误（ok=false）；
// pyproject.toml 里没有 [tool.antiseptic] 表同样视为未找到。
func loadTable(path string, pyproject bool) (map[string]any, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &ConfigError{Path: path, Msg: fmt.Sprintf("配置文件不可读：%v", err)}
	}
	var table map[string]any
	if err := toml.Unmarshal(b, &table); err != nil {
		return nil, false, &ConfigError{Path: path, Msg: fmt.Sprintf("TOML 语法无效：%v", err)}
	}
	if !pyproject {
		return table, true, nil
	}
	tool, ok := table["tool"].(map[string]any)
	if !ok {
		return nil, false, nil
	}
	sub, ok := tool["antiseptic"]
	if !ok {
		return nil, false, nil
	}
	m, ok := sub.(map[string]any)
	if !ok {
		return nil, false, &ConfigError{Path: path, Msg: "配置表 [tool.antiseptic] 必须是 TOML 表"}
	}
	return m, true, nil
}

// fromTable 只认 exclude 和 allowed-words 两个键，其余键全部忽略（向前兼容）。
func fromTable(path string, table map[string]any) (Config, error) {
	exclude, err := stringArray(path, table, "exclude")
	if err != nil {
		return Config{}, err
	}
	allowed, err := stringArray(path, table, "allowed-words")
	if err != nil {
		return Config{}, err
	}
	return Config{Exclude: exclude, AllowedWords: allowed}, nil
}

func stringArray(path string, table map[string]any, key string) ([]string, error) {
	v, ok := table[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &ConfigError{Path: path, Msg: fmt.Sprintf("配置项 %q 必须是数组", key)}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, &ConfigError{Path: path, Msg: fmt.Sprintf("配置项 %q 只能包含字符串", key)}
		}
		out = append(out, s)
	}
	return out, nil
}
