package cmd

import "strings"

func rootLongHelp() string {
	return strings.TrimSpace(`
面向 CI 的英文拼写检查 CLI。

用法：
- 命令：antiseptic [path...]（不传路径默认扫当前目录）
- 输出：每处拼写问题一行，格式固定
  path:line:col: AS001 spelling mistake ` + "`word`" + `
- 没有问题时不输出任何内容

配置（按顺序取第一个命中的文件，当前目录没有则逐级向上找）：
1. pyproject.toml 里的 [tool.antiseptic] 表
2. antiseptic.toml
3. .antiseptic.toml

可识别的配置键（其余键忽略）：
- exclude：glob 字符串数组，追加到内置排除模式之后
- allowed-words：字符串数组，视为拼写正确的词（大小写不敏感）

扫描行为：
- 目录递归遍历，命中排除模式的目录整棵剪掉
- 固定不跟随软链接
- 二进制 / 非 UTF-8 / 超过 --max-file-size 的文件按非文本静默跳过
- 默认排除：.git、缓存目录、lock 文件、构建产物等

退出码：
- 0 没有拼写问题
- 1 存在拼写问题，或配置 / 遍历出错
`)
}

func rootExampleHelp() string {
	return strings.TrimSpace(`
  # 扫描当前目录
  antiseptic

  # 扫描指定目录和文件
  antiseptic src/ README.md

  # 提高并发、放宽单文件大小上限
  antiseptic src/ --jobs 8 --max-file-size 50MB
`)
}
