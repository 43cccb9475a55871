package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// wrapText 按显示宽度在词边界换行，宽字符占两列，空行原样保留。
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		out = append(out, wrapWords(para, width)...)
	}
	return out
}

func wrapWords(para string, width int) []string {
	if runewidth.StringWidth(para) <= width {
		return []string{para}
	}
	var (
		out  []string
		cur  strings.Builder
		used int
	)
	flush := func() {
		if used > 0 {
			out = append(out, cur.String())
			cur.Reset()
			used = 0
		}
	}
	for _, word := range strings.Fields(para) {
		w := runewidth.StringWidth(word)
		if w > width {
			flush()
			out = append(out, hardWrap(word, width)...)
			continue
		}
		if used > 0 && used+1+w > width {
			flush()
		}
		if used > 0 {
			cur.WriteByte(' ')
			used++
		}
		cur.WriteString(word)
		used += w
	}
	flush()
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

// hardWrap 逐 rune 切分且保留空白，用于代码与终端输出。
func hardWrap(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	var out []string
	start, used := 0, 0
	for i, r := range line {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && used > 0 {
			out = append(out, line[start:i])
			start, used = i, 0
		}
		used += rw
	}
	return append(out, line[start:])
}

func wrapLines(content string, width int, style lipgloss.Style) []Line {
	wrapped := wrapText(content, width)
	out := make([]Line, len(wrapped))
	for i, l := range wrapped {
		out[i] = Plain(l, style)
	}
	return out
}
