package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"antiseptic/internal/app"
	"antiseptic/internal/config"
	"antiseptic/internal/dictionary"
	"antiseptic/internal/output"
)

type commonFlags struct {
	Jobs        int
	MaxFileSize string
	NoColor     bool
	ShowVersion bool
}

var (
	errColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
)

func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		var ee *ExitError
		if errors.As(err, &ee) {
			if ee.Msg != "" {
				errColor.Fprintln(os.Stderr, ee.Msg)
			}
			return ee.Code
		}
		errColor.Fprintln(os.Stderr, err.Error())
		return ExitIssue
	}
	return ExitOK
}

func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &commonFlags{}
	root := &cobra.Command{
		Use:           "antiseptic [paths...]",
		Short:         "快速拼写检查源码仓库，适合做 CI 门禁",
		Long:          rootLongHelp(),
		Example:       rootExampleHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.ShowVersion {
				printVersion(stdout)
				return nil
			}
			return runCheck(stdout, stderr, flags, args)
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().IntVar(&flags.Jobs, "jobs", app.DefaultJobs(), "并发任务数（默认 min(8, CPU核数)）")
	root.PersistentFlags().StringVar(&flags.MaxFileSize, "max-file-size", "10MB", "单文件最大处理大小，超出则按非文本静默跳过（如 10MB）")
	root.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "关闭 stderr 彩色输出")
	root.PersistentFlags().BoolVarP(&flags.ShowVersion, "version", "v", false, "显示版本信息")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(stdout)
		},
	}
	root.AddCommand(versionCmd)
	return root
}

func runCheck(stdout, stderr io.Writer, flags *commonFlags, args []string) error {
	setupColor(flags.NoColor)
	maxBytes, err := parseSize(flags.MaxFileSize)
	if err != nil {
		return &ExitError{Code: ExitIssue, Msg: err.Error()}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return &ExitError{Code: ExitIssue, Msg: "读取当前目录失败"}
	}

	// 配置解析失败是致命错误，不进入扫描阶段。
	cfg, _, err := config.Resolve(cwd)
	if err != nil {
		return &ExitError{Code: ExitIssue, Msg: err.Error()}
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	res := app.Run(app.Options{
		Paths:            paths,
		CWD:              cwd,
		Exclude:          cfg.Exclude,
		Jobs:             flags.Jobs,
		MaxFileSizeBytes: maxBytes,
		Dict:             dictionary.New(cfg.AllowedWords),
	})

	for _, we := range res.WalkErrors {
		warnColor.Fprintln(stderr, we)
	}
	if werr := output.Write(stdout, res.Diagnostics); werr != nil {
		return &ExitError{Code: ExitIssue, Msg: fmt.Sprintf("输出结果失败：%v", werr)}
	}
	if code := output.ExitCode(res); code != ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}

func setupColor(noColor bool) {
	if noColor {
		color.NoColor = true
		return
	}
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

func parseSize(s string) (int64, error) {
	v := strings.TrimSpace(strings.ToUpper(s))
	if v == "" {
		return 10 * 1024 * 1024, nil
	}
	units := []struct {
		U string
		M int64
	}{
		{"GB", 1024 * 1024 * 1024},
		{"MB", 1024 * 1024},
		{"KB", 1024},
		{"B", 1},
	}
	for _, u := range units {
		if strings.HasSuffix(v, u.U) {
			n := strings.TrimSpace(strings.TrimSuffix(v, u.U))
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return 0, fmt.Errorf("--max-file-size 参数无效：%s", s)
			}
			return int64(f * float64(u.M)), nil
		}
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("--max-file-size 参数无效：%s", s)
	}
	return n, nil
}
