package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Span 是一段同样式的文本。
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line 是一行渲染结果。Style 作用于整行。
type Line struct {
	Spans []Span
	Style lipgloss.Style
}

// Plain 构造只有一个 Span 的行。
func Plain(text string, style lipgloss.Style) Line {
	return Line{Spans: []Span{{Text: text, Style: style}}}
}

// Render 返回带 ANSI 样式的行文本。
func (l Line) Render() string {
	var sb strings.Builder
	for _, sp := range l.Spans {
		sb.WriteString(sp.Style.Render(sp.Text))
	}
	return l.Style.Render(sb.String())
}

// Text 返回去掉样式的行文本。
func (l Line) Text() string {
	var sb strings.Builder
	for _, sp := range l.Spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// Buffer 按顺序收集行。
type Buffer struct {
	Lines []Line
}

func (b *Buffer) WriteLines(lines ...Line) {
	b.Lines = append(b.Lines, lines...)
}

func (b *Buffer) Blank() {
	b.Lines = append(b.Lines, Line{})
}

func (b *Buffer) Len() int {
	return len(b.Lines)
}

// LinesToStrings 渲染出可直接交给 viewport 的字符串。
func LinesToStrings(lines []Line) []string {
	return mapLines(lines, Line.Render)
}

// LinesToPlainStrings 丢弃样式，用于测试与非终端输出。
func LinesToPlainStrings(lines []Line) []string {
	return mapLines(lines, Line.Text)
}

func mapLines(lines []Line, fn func(Line) string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fn(l)
	}
	return out
}

// Indent 给首行加 first，其余行加 rest，用于消息前缀与续行对齐。
func Indent(lines []Line, first, rest Span) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		prefix := rest
		if i == 0 {
			prefix = first
		}
		out[i] = Line{Spans: append([]Span{prefix}, l.Spans...), Style: l.Style}
	}
	return out
}
