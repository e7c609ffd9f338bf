package textutil

import (
	"iter"
	"unicode"
)

// Token 是从文本里切出来的一个待查单词，行列均从 1 开始，列按字符数。
type Token struct {
	Text   string
	Line   int
	Column int
}

func DetectBinary(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	ctl := 0
	for _, b := range sample {
		if b == 0 {
			return true
		}
		if b == 9 || b == 10 || b == 13 {
			continue
		}
		if b < 32 || b == 127 {
			ctl++
		}
	}
	ratio := float64(ctl) / float64(len(sample))
	return ratio > 0.30
}

// Tokens 按字符扫描文本，惰性产出单词 token。
// 规则：token 是连续 Unicode 字母的最大串；串内只有"小写后紧跟大写"
// 才算词界（camelCase → camel/Case；HTMLParser 不拆）。词界只在串内部
// 生效：串首单个小写字母后紧跟大写不拆（xYz 不会切出孤立的 x）。
// 数字、标点、空白结束当前串，换行把列重置为 1。
func Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		line, col := 1, 1
		startLine, startCol := 0, 0
		var run []rune
		var prev rune

		flush := func() bool {
			if len(run) == 0 {
				return true
			}
			tok := Token{Text: string(run), Line: startLine, Column: startCol}
			run = run[:0]
			return yield(tok)
		}

		for _, r := range text {
			if r == '\n' {
				if !flush() {
					return
				}
				line++
				col = 1
				prev = r
				continue
			}
			if unicode.IsLetter(r) {
				if len(run) >= 2 && unicode.IsLower(prev) && unicode.IsUpper(r) {
					if !flush() {
						return
					}
				}
				if len(run) == 0 {
					startLine, startCol = line, col
				}
				run = append(run, r)
			} else if !flush() {
				return
			}
			prev = r
			col++
		}
		flush()
	}
}
