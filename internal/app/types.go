package app

import "antiseptic/internal/dictionary"

// DiagnosticCode 目前只有一类诊断：拼写错误。
const DiagnosticCode = "AS001"

// Diagnostic 是一处拼写问题，Word 保留 token 的原始大小写。
type Diagnostic struct {
	Path   string
	Line   int
	Column int
	Code   string
	Word   string
}

type Options struct {
	Paths            []string
	CWD              string
	Exclude          []string
	Jobs             int
	MaxFileSizeBytes int64
	Dict             *dictionary.Dictionary
}

type Result struct {
	Diagnostics  []Diagnostic
	WalkErrors   []string
	FilesChecked int
}
