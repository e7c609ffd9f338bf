package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"antiseptic/internal/dictionary"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func testDict() *dictionary.Dictionary {
	return dictionary.NewFromWords([]string{"hello", "world", "spelling", "fine"})
}

func TestRunFindsMistakeWithPosition(t *testing.T) {
	tmp := t.TempDir()
	// 第 15 行第 32 列放一个拼错的词。
	content := strings.Repeat("\n", 14) + strings.Repeat(" ", 31) + "helol\n"
	writeFile(t, filepath.Join(tmp, "myfile.txt"), []byte(content))

	res := Run(Options{Paths: []string{tmp}, CWD: tmp, Dict: testDict()})
	if len(res.WalkErrors) != 0 {
		t.Fatalf("unexpected walk errors: %v", res.WalkErrors)
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic: %#v", res.Diagnostics)
	}
	d := res.Diagnostics[0]
	if d.Line != 15 || d.Column != 32 || d.Word != "helol" || d.Code != DiagnosticCode {
		t.Fatalf("unexpected diagnostic: %#v", d)
	}
	if filepath.Base(d.Path) != "myfile.txt" {
		t.Fatalf("unexpected path: %q", d.Path)
	}
}

func TestRunCleanTreeProducesNothing(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "ok.txt"), []byte("hello world\nFine Spelling\n"))

	res := Run(Options{Paths: []string{tmp}, CWD: tmp, Dict: testDict()})
	if len(res.Diagnostics) != 0 || len(res.WalkErrors) != 0 {
		t.Fatalf("clean tree should produce nothing: %#v", res)
	}
	if res.FilesChecked != 1 {
		t.Fatalf("expected one file checked: %d", res.FilesChecked)
	}
}

func TestRunKeepsOriginalCase(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.txt"), []byte("Helol HELOL\n"))

	res := Run(Options{Paths: []string{tmp}, CWD: tmp, Dict: testDict()})
	if len(res.Diagnostics) != 2 {
		t.Fatalf("expected two diagnostics: %#v", res.Diagnostics)
	}
	if res.Diagnostics[0].Word != "Helol" || res.Diagnostics[1].Word != "HELOL" {
		t.Fatalf("diagnostics must keep original case: %#v", res.Diagnostics)
	}
}

func TestRunSkipsShortTokens(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.txt"), []byte("zz qqq hello\n"))

	res := Run(Options{Paths: []string{tmp}, CWD: tmp, Dict: testDict()})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("tokens under 4 chars must not be flagged: %#v", res.Diagnostics)
	}
}

func TestRunSkipsNonTextSilently(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "bin.dat"), []byte{0x00, 0x01, 0x02, 'q', 'w', 'x', 'y', 'z'})
	writeFile(t, filepath.Join(tmp, "bad-utf8.txt"), []byte{'q', 'w', 'x', 'y', 0xc3, 0x28})
	writeFile(t, filepath.Join(tmp, "ok.txt"), []byte("hello\n"))

	res := Run(Options{Paths: []string{tmp}, CWD: tmp, Dict: testDict()})
	if len(res.Diagnostics) != 0 || len(res.WalkErrors) != 0 {
		t.Fatalf("non-text files must be skipped silently: %#v", res)
	}
}

func TestRunSkipsOversizedFiles(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "big.txt"), []byte("wrongg wrongg wrongg wrongg\n"))

	res := Run(Options{Paths: []string{tmp}, CWD: tmp, Dict: testDict(), MaxFileSizeBytes: 8})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("oversized file must be skipped: %#v", res.Diagnostics)
	}
}

func TestRunDeterministicOrderAcrossFiles(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.txt"), []byte("aaaa\nbbbb\n"))
	writeFile(t, filepath.Join(tmp, "b.txt"), []byte("cccc\n"))
	writeFile(t, filepath.Join(tmp, "c.txt"), []byte("dddd eeee\n"))

	want := []string{"aaaa", "bbbb", "cccc", "dddd", "eeee"}
	for range 10 {
		res := Run(Options{Paths: []string{tmp}, CWD: tmp, Dict: testDict(), Jobs: 4})
		if len(res.Diagnostics) != len(want) {
			t.Fatalf("unexpected diagnostics: %#v", res.Diagnostics)
		}
		for i, d := range res.Diagnostics {
			if d.Word != want[i] {
				t.Fatalf("order not deterministic: got %q at %d", d.Word, i)
			}
		}
	}
}

func TestRunAppliesExcludePatterns(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "keep.txt"), []byte("wrongg\n"))
	writeFile(t, filepath.Join(tmp, "skip.gen"), []byte("wrongg\n"))
	writeFile(t, filepath.Join(tmp, "sandbox", "inner.txt"), []byte("wrongg\n"))

	res := Run(Options{
		Paths:   []string{tmp},
		CWD:     tmp,
		Dict:    testDict(),
		Exclude: []string{"*.gen", "sandbox"},
	})
	if len(res.Diagnostics) != 1 {
		t.Fatalf("expected only keep.txt flagged: %#v", res.Diagnostics)
	}
	if filepath.Base(res.Diagnostics[0].Path) != "keep.txt" {
		t.Fatalf("unexpected path: %q", res.Diagnostics[0].Path)
	}
}

func TestRunMissingRootRecordedOnce(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "ok.txt"), []byte("hello\n"))

	res := Run(Options{Paths: []string{filepath.Join(tmp, "nope"), tmp}, CWD: tmp, Dict: testDict()})
	if len(res.WalkErrors) != 1 {
		t.Fatalf("expected one walk error: %v", res.WalkErrors)
	}
	if res.FilesChecked != 1 {
		t.Fatalf("remaining roots should still be scanned: %d", res.FilesChecked)
	}
}
