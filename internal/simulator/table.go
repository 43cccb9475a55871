package simulator

import (
	"sort"
	"strings"
)

// ClearSignal 是 clear 命令的哨兵输出，触发整屏重置而不是显示。
const ClearSignal = "CLEAR_SIGNAL"

// CommitCommand 是提交命令在表中的键，也是前缀匹配使用的字面前缀。
const CommitCommand = "git commit -m"

// Table 是不可变的命令表：精确命令 -> 预设输出。
// 构造后不再修改，可以在多个模拟器之间共享。
type Table struct {
	entries map[string]string
}

// NewTable 拷贝传入的映射构造命令表，调用方后续修改原映射不会影响表。
func NewTable(entries map[string]string) Table {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return Table{entries: copied}
}

// DefaultTable 返回练习终端内置的命令表。
func DefaultTable() Table {
	return NewTable(map[string]string{
		"git init":    "Initialized empty Git repository in /home/user/project/.git/",
		"git status":  "On branch main\nNo commits yet\n\nUntracked files:\n  (use \"git add <file>...\" to include in what will be committed)\n    index.html\n    style.css",
		"git add .":   "warning: LF will be replaced by CRLF in index.html.\nThe file will have its original line endings in your working directory",
		CommitCommand: "[main (root-commit) 2d8d8f1] Initial commit\n 2 files changed, 45 insertions(+)\n create mode 100644 index.html\n create mode 100644 style.css",
		"git log":     "commit 2d8d8f1e4b3c2a1 (HEAD -> main)\nAuthor: User <user@example.com>\nDate:   Mon Oct 23 20:23:45 2023 +0000\n\n    Initial commit",
		"git push":    "To https://github.com/user/repo.git\n * [new branch]      main -> main",
		"help":        "Available commands:\n  git init\n  git status\n  git add .\n  git commit -m \"message\"\n  git log\n  git push\n  clear",
		"clear":       ClearSignal,
	})
}

// Lookup 按精确键查找命令输出。
func (t Table) Lookup(cmd string) (string, bool) {
	out, ok := t.entries[cmd]
	return out, ok
}

// Len 返回命令数量。
func (t Table) Len() int {
	return len(t.entries)
}

// Commands 返回排序后的命令列表。
func (t Table) Commands() []string {
	out := make([]string, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// NotFound 构造未知命令的固定提示。
func NotFound(input string) string {
	return "Command not found: " + input + ". Type 'help' for available commands."
}

// commitMessage 返回 `git commit -m` 之后的参数（去掉首尾空白与成对引号）。
func commitMessage(input string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(input, CommitCommand))
	if len(rest) >= 2 {
		first, last := rest[0], rest[len(rest)-1]
		if (first == '"' || first == '\'') && first == last {
			rest = strings.TrimSpace(rest[1 : len(rest)-1])
		}
	}
	return rest
}
