// Package dictionary 提供拼写检查用的只读单词集合。
package dictionary

import (
	"bufio"
	_ "embed"
	"strings"

	"golang.org/x/text/cases"
)

//go:embed en.txt
var bundled string

// Dictionary 是大小写不敏感的已知单词集合，构建后只读，可并发共享。
type Dictionary struct {
	words map[string]struct{}
}

// New 把内置词表和配置里的 allowed-words 合并成一个折叠后的集合。
func New(allowed []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, 4096)}
	sc := bufio.NewScanner(strings.NewReader(bundled))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, w := range strings.Fields(line) {
			d.words[Fold(w)] = struct{}{}
		}
	}
	for _, w := range allowed {
		d.add(w)
	}
	return d
}

// NewFromWords 只用给定词表构建，测试用它替换内置词表。
func NewFromWords(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.add(w)
	}
	return d
}

func (d *Dictionary) add(word string) {
	w := strings.TrimSpace(word)
	if w == "" || strings.HasPrefix(w, "#") {
		return
	}
	d.words[Fold(w)] = struct{}{}
}

// Contains 判断单词是否已知，查询前先做大小写折叠。
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[Fold(word)]
	return ok
}

func (d *Dictionary) Len() int { return len(d.words) }

// Fold 做 Unicode 大小写折叠。cases.Caser 带内部状态不能跨 goroutine
// 共享，所以每次调用新建。
func Fold(s string) string {
	return cases.Fold().String(s)
}
