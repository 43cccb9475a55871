package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	outputStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))
	notFoundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
)

const promptPrefix = "$ "

// RenderTerminal 渲染模拟终端的滚动缓冲：以 "$ " 开头的输入行高亮命令，
// 输出行保留空白并逐字符折行。
func RenderTerminal(lines []string, width int) []Line {
	out := make([]Line, 0, len(lines))
	for _, raw := range lines {
		if cmd, ok := strings.CutPrefix(raw, promptPrefix); ok {
			hl := highlightBashLine(cmd)
			spans := append([]Span{{Text: promptPrefix, Style: promptStyle}}, hl.Spans...)
			out = append(out, Line{Spans: spans})
			continue
		}
		style := outputStyle
		if strings.HasPrefix(raw, "Command not found:") {
			style = notFoundStyle
		}
		for _, l := range hardWrap(raw, width) {
			out = append(out, Plain(l, style))
		}
	}
	return out
}
