package render

import (
	"strings"

	"gitmaster/internal/agent"

	"github.com/charmbracelet/lipgloss"
)

var (
	userPrefixStyle      = lipgloss.NewStyle().Faint(true).Bold(true)
	assistantPrefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	pendingStyle         = lipgloss.NewStyle().Faint(true).Italic(true)
)

// RenderMessages 渲染助手对话。助手消息为空时显示 pending（加载指示），
// md 为 nil 时按纯文本换行。
func RenderMessages(msgs []agent.Message, width int, md *Markdown, pending string) []Line {
	if width <= 0 {
		width = 80
	}
	bodyWidth := width - 2
	if bodyWidth < 1 {
		bodyWidth = width
	}
	var buf Buffer
	for i, msg := range msgs {
		if i > 0 {
			buf.Blank()
		}
		content := strings.TrimRight(msg.Content, "\n")
		switch msg.Role {
		case agent.RoleUser:
			body := wrapLines(content, bodyWidth, lipgloss.Style{})
			buf.WriteLines(Indent(body, Span{Text: "› ", Style: userPrefixStyle}, Span{Text: "  "})...)
		default:
			var body []Line
			if content == "" {
				body = []Line{Plain(pending, pendingStyle)}
			} else {
				body = md.Render(content, bodyWidth)
			}
			buf.WriteLines(Indent(body, Span{Text: "• ", Style: assistantPrefixStyle}, Span{Text: "  "})...)
		}
	}
	return buf.Lines
}
