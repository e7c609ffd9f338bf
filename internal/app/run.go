package app

import (
	"os"
	"runtime"
	"sort"
	"sync"
	"unicode/utf8"

	"antiseptic/internal/dictionary"
	"antiseptic/internal/scan"
	"antiseptic/internal/textutil"
)

// 短于 4 个字符的 token 不做拼写判定。
const minFlagLen = 4

type fileJob struct {
	Seq  int
	Path string
}

type fileResult struct {
	Seq   int
	Diags []Diagnostic
}

func DefaultJobs() int {
	n := runtime.NumCPU()
	if n > 8 {
		return 8
	}
	if n < 1 {
		return 1
	}
	return n
}

// Run 遍历文件并逐个拼写检查。文件粒度并行，单文件结果先缓存，
// 最后按遍历顺序合并，保证输出确定。
func Run(opts Options) Result {
	if opts.Jobs <= 0 {
		opts.Jobs = DefaultJobs()
	}
	if opts.MaxFileSizeBytes <= 0 {
		opts.MaxFileSizeBytes = 10 * 1024 * 1024
	}
	filter := scan.NewFilter(opts.Exclude)

	in := make(chan fileJob)
	out := make(chan fileResult)
	wg := sync.WaitGroup{}
	for i := 0; i < opts.Jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range in {
				out <- fileResult{Seq: j.Seq, Diags: checkFile(j.Path, opts.Dict, opts.MaxFileSizeBytes)}
			}
		}()
	}

	var results []fileResult
	done := make(chan struct{})
	go func() {
		defer close(done)
		for fr := range out {
			results = append(results, fr)
		}
	}()

	var res Result
	seq := 0
	for path, err := range scan.Walk(opts.Paths, opts.CWD, filter) {
		if err != nil {
			res.WalkErrors = append(res.WalkErrors, err.Error())
			continue
		}
		in <- fileJob{Seq: seq, Path: path}
		seq++
	}
	close(in)
	wg.Wait()
	close(out)
	<-done

	res.FilesChecked = seq
	sort.Slice(results, func(i, j int) bool { return results[i].Seq < results[j].Seq })
	for _, fr := range results {
		res.Diagnostics = append(res.Diagnostics, fr.Diags...)
	}
	return res
}

// checkFile 检查单个文件。读取失败、超出大小上限、二进制、非 UTF-8
// 都按非文本处理，静默跳过，不产生诊断。
func checkFile(path string, dict *dictionary.Dictionary, maxBytes int64) []Diagnostic {
	info, err := os.Stat(path)
	if err != nil || info.Size() > maxBytes {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	sample := data
	if len(sample) > 8192 {
		sample = sample[:8192]
	}
	if textutil.DetectBinary(sample) {
		return nil
	}
	if !utf8.Valid(data) {
		return nil
	}

	var diags []Diagnostic
	for tok := range textutil.Tokens(string(data)) {
		if utf8.RuneCountInString(tok.Text) < minFlagLen {
			continue
		}
		if dict.Contains(tok.Text) {
			continue
		}
		diags = append(diags, Diagnostic{
			Path:   path,
			Line:   tok.Line,
			Column: tok.Column,
			Code:   DiagnosticCode,
			Word:   tok.Text,
		})
	}
	return diags
}
