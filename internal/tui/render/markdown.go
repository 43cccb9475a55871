package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Markdown 渲染 Markdown 文本，按宽度缓存 glamour 渲染器。
// 渲染失败时回退为按词换行的纯文本。
type Markdown struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdown 创建渲染器；style 为 glamour 内置样式名（dark、light、notty），
// 空值时根据终端自动选择。
func NewMarkdown(style string) *Markdown {
	return &Markdown{style: strings.TrimSpace(style), renderers: map[int]*glamour.TermRenderer{}}
}

func (m *Markdown) renderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.renderers[width]; ok {
		return r, nil
	}
	styleOpt := glamour.WithAutoStyle()
	if m.style != "" {
		styleOpt = glamour.WithStylePath(m.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	m.renderers[width] = r
	return r, nil
}

// RenderStrings 渲染为终端字符串行，去掉 glamour 添加的首尾空行。
// m 为 nil 时直接按纯文本换行。
func (m *Markdown) RenderStrings(text string, width int) []string {
	if m == nil || width <= 0 {
		return wrapText(text, width)
	}
	r, err := m.renderer(width)
	if err != nil {
		return wrapText(text, width)
	}
	out, err := r.Render(text)
	if err != nil {
		return wrapText(text, width)
	}
	lines := strings.Split(out, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// Render 与 RenderStrings 相同，但返回 Line 以便与其他块组合。
func (m *Markdown) Render(text string, width int) []Line {
	raw := m.RenderStrings(text, width)
	out := make([]Line, 0, len(raw))
	for _, l := range raw {
		out = append(out, Line{Spans: []Span{{Text: l}}})
	}
	return out
}
