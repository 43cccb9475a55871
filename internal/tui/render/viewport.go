package render

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Pane 包装 bubbles viewport，内容未变化时跳过重绘，追加内容时保持贴底。
type Pane struct {
	viewport.Model
	lastLines []string
}

func NewPane(width, height int) Pane {
	return Pane{Model: viewport.New(width, height)}
}

// Resize 更新宽高；宽度变化会使缓存失效。
func (p *Pane) Resize(width, height int) {
	if p.Width != width {
		p.lastLines = nil
	}
	p.Width = width
	p.Height = height
}

// HandleUpdate 代理 bubbles 的 Update，保持内部状态。
func (p *Pane) HandleUpdate(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return cmd
}

// SetLines 替换内容；若替换前已在底部则继续停留在底部。
func (p *Pane) SetLines(lines []string) {
	if p.lastLines != nil && slices.Equal(lines, p.lastLines) {
		return
	}
	stickToBottom := p.AtBottom()
	p.lastLines = append([]string(nil), lines...)
	p.SetContent(strings.Join(lines, "\n"))
	if stickToBottom {
		p.GotoBottom()
	}
}

// ShowTop 替换内容并回到顶部，用于切换章节。
func (p *Pane) ShowTop(lines []string) {
	p.lastLines = append([]string(nil), lines...)
	p.SetContent(strings.Join(lines, "\n"))
	p.GotoTop()
}
