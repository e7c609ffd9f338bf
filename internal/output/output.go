// Package output 负责诊断报告的文本渲染和退出码计算。
package output

import (
	"fmt"
	"io"

	"antiseptic/internal/app"
)

// Write 按固定格式逐行输出诊断，顺序即产生顺序：
// path:line:col: AS001 spelling mistake `word`
func Write(w io.Writer, diags []app.Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s spelling mistake `%s`\n",
			d.Path, d.Line, d.Column, d.Code, d.Word); err != nil {
			return err
		}
	}
	return nil
}

// ExitCode：0 表示干净，1 表示存在拼写诊断或遍历错误。
func ExitCode(res app.Result) int {
	if len(res.Diagnostics) > 0 || len(res.WalkErrors) > 0 {
		return 1
	}
	return 0
}
