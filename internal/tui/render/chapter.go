package render

import (
	"strings"

	"gitmaster/internal/content"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
	codeHeaderStyle  = lipgloss.NewStyle().Faint(true)
	codeBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5E6472"))
	codeSelectedBar  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")).Bold(true)
	copyHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	tipHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#38BDF8"))
	tipBodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#BAE6FD"))
	warnHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	warnBodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDE68A"))
	imageStyle       = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#A1A1AA"))
	imageURLStyle    = lipgloss.NewStyle().Faint(true).Underline(true)
	calloutIndent    = "  "
	codeBar          = "│ "
	selectedCodeBar  = "┃ "
	selectedCopyHint = "[c] copy"
)

type ChapterOptions struct {
	Width int
	// Selected 是当前选中的块下标（仅对代码块生效），-1 表示无。
	Selected int
	// Markdown 为 nil 时正文按纯文本渲染。
	Markdown *Markdown
}

// RenderChapter 把章节渲染为行：标题、正文、代码、提示、警告与图片说明。
func RenderChapter(ch content.Chapter, opts ChapterOptions) []Line {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	var buf Buffer
	for _, l := range wrapText(ch.Title, width) {
		buf.WriteLines(Plain(l, titleStyle))
	}
	buf.Blank()

	for i, block := range ch.Blocks {
		switch block.Kind {
		case content.KindText:
			buf.WriteLines(opts.Markdown.Render(block.Content, width)...)
		case content.KindCode:
			buf.WriteLines(renderCode(block, width, i == opts.Selected)...)
		case content.KindTip:
			buf.WriteLines(renderCallout("💡 Pro Tip", block.Content, width, tipHeaderStyle, tipBodyStyle)...)
		case content.KindWarning:
			buf.WriteLines(renderCallout("⚠ Warning", block.Content, width, warnHeaderStyle, warnBodyStyle)...)
		case content.KindImage:
			buf.WriteLines(renderImage(block, width)...)
		}
		buf.Blank()
	}
	return buf.Lines
}

func renderCode(block content.Block, width int, selected bool) []Line {
	lang := block.Language
	if lang == "" {
		lang = "code"
	}
	header := []Span{{Text: lang, Style: codeHeaderStyle}}
	bar, barStyle := codeBar, codeBarStyle
	if selected {
		header = append(header, Span{Text: "  " + selectedCopyHint, Style: copyHintStyle})
		bar, barStyle = selectedCodeBar, codeSelectedBar
	}
	lines := []Line{{Spans: header}}

	bodyWidth := width - len(bar)
	var body []Line
	if lang == "bash" || lang == "sh" || lang == "shell" {
		body = HighlightBashToLines(block.Content)
	} else {
		for _, l := range strings.Split(block.Content, "\n") {
			body = append(body, Plain(l, lipgloss.Style{}))
		}
	}
	for _, l := range body {
		if spanWidth(l) > bodyWidth {
			for _, part := range hardWrap(plainText(l), bodyWidth) {
				lines = append(lines, Line{Spans: []Span{{Text: bar, Style: barStyle}, {Text: part}}})
			}
			continue
		}
		spans := append([]Span{{Text: bar, Style: barStyle}}, l.Spans...)
		lines = append(lines, Line{Spans: spans})
	}
	return lines
}

func renderCallout(title, body string, width int, headerStyle, bodyStyle lipgloss.Style) []Line {
	lines := []Line{Plain(title, headerStyle)}
	for _, l := range wrapText(body, width-len(calloutIndent)) {
		lines = append(lines, Line{Spans: []Span{{Text: calloutIndent}, {Text: l, Style: bodyStyle}}})
	}
	return lines
}

func renderImage(block content.Block, width int) []Line {
	alt := block.Alt
	if alt == "" {
		alt = "image"
	}
	var lines []Line
	for _, l := range wrapText("[image] "+alt, width) {
		lines = append(lines, Plain(l, imageStyle))
	}
	for _, l := range hardWrap(block.Content, width) {
		lines = append(lines, Plain(l, imageURLStyle))
	}
	return lines
}

func plainText(l Line) string {
	var sb strings.Builder
	for _, sp := range l.Spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

func spanWidth(l Line) int {
	return lipgloss.Width(plainText(l))
}
