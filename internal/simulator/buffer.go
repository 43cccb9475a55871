package simulator

var initialOutput = []string{
	"Welcome to the Git Simulator v1.0.0",
	"Type 'help' to see available commands.",
	"Try initializing a repository with 'git init'.",
}

// InitialOutput 返回终端初始欢迎内容的拷贝。
func InitialOutput() []string {
	return append([]string(nil), initialOutput...)
}

// Buffer 是终端的滚动缓冲：除 Reset 外只允许追加。
type Buffer struct {
	lines []string
}

// NewBuffer 返回内容为初始欢迎语的缓冲。
func NewBuffer() *Buffer {
	return &Buffer{lines: InitialOutput()}
}

// Append 追加若干行。
func (b *Buffer) Append(lines ...string) {
	if len(lines) == 0 {
		return
	}
	b.lines = append(b.lines, lines...)
}

// Reset 将缓冲恢复到初始内容，与之前的内容无关。
func (b *Buffer) Reset() {
	b.lines = InitialOutput()
}

// Lines 返回当前行的拷贝。
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Len 返回当前行数。
func (b *Buffer) Len() int {
	return len(b.lines)
}
