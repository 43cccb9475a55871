package simulator

import (
	"strings"

	"gitmaster/internal/logger"
)

// Options 控制模拟器的匹配行为。
type Options struct {
	// StrictCommit 要求 `git commit -m` 后面带非空的提交信息。
	StrictCommit bool
}

// Result 描述一次输入的处理结果。
type Result struct {
	Input   string // 去除首尾空白后的输入
	Output  string // 解析出的输出；Cleared 时为 ClearSignal
	Cleared bool   // 缓冲已被重置，输入未回显
	Ignored bool   // 空输入，缓冲未变化
}

// Simulator 把一行输入映射为预设输出并写入缓冲。
// 它不持有缓冲，本身无状态：(buffer, input) -> buffer'。
type Simulator struct {
	table Table
	opts  Options
	log   *logger.LogEntry
}

// New 使用给定命令表创建模拟器。
func New(table Table, opts Options) *Simulator {
	return &Simulator{
		table: table,
		opts:  opts,
		log:   logger.Named("simulator"),
	}
}

// Table 返回模拟器使用的命令表。
func (s *Simulator) Table() Table {
	return s.table
}

// Resolve 对已去空白的输入执行查找：精确匹配、提交前缀匹配、最后回退为未找到提示。
func Resolve(table Table, input string) string {
	return resolve(table, input, Options{})
}

func resolve(table Table, input string, opts Options) string {
	if out, ok := table.Lookup(input); ok {
		if input == CommitCommand && opts.StrictCommit {
			return NotFound(input)
		}
		return out
	}
	if strings.HasPrefix(input, CommitCommand) {
		if opts.StrictCommit && !validCommitArgs(input) {
			return NotFound(input)
		}
		if out, ok := table.Lookup(CommitCommand); ok {
			return out
		}
	}
	return NotFound(input)
}

// validCommitArgs 要求 -m 与消息之间有空白且消息非空。
func validCommitArgs(input string) bool {
	rest := strings.TrimPrefix(input, CommitCommand)
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return false
	}
	return commitMessage(input) != ""
}

// Execute 处理一行原始输入并更新缓冲。
func (s *Simulator) Execute(buf *Buffer, raw string) Result {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Result{Ignored: true}
	}
	output := resolve(s.table, input, s.opts)
	if output == ClearSignal {
		buf.Reset()
		s.log.WithField("input", input).Debug("terminal cleared")
		return Result{Input: input, Output: output, Cleared: true}
	}
	buf.Append("$ "+input, output)
	s.log.WithFields(logger.Fields{
		"input":   input,
		"matched": output != NotFound(input),
	}).Debug("terminal command")
	return Result{Input: input, Output: output}
}

// Reset 是终端的手动重置控件，效果与 clear 命令相同。
func (s *Simulator) Reset(buf *Buffer) {
	buf.Reset()
}
