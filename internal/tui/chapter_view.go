package tui

import (
	"fmt"
	"strings"

	"gitmaster/internal/content"
	"gitmaster/internal/tui/render"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) currentChapter() content.Chapter {
	return m.chapters[m.chapterIdx]
}

func (m *Model) updateChapter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if scrollKey(&m.chapterPane, key) {
		return m, nil
	}
	switch key {
	case "q":
		return m.quit()
	case "n", "right":
		return m, m.nextChapter()
	case "p", "left":
		if m.chapterIdx > 0 {
			m.showChapter(m.chapterIdx - 1)
		}
	case "up", "k":
		m.chapterPane.ScrollUp(1)
	case "down", "j":
		m.chapterPane.ScrollDown(1)
	case "]", "tab":
		m.moveCodeCursor(1)
	case "[", "shift+tab":
		m.moveCodeCursor(-1)
	case "c":
		return m, m.copySelected()
	case "/":
		return m, m.openPicker()
	case "t":
		return m, m.openTerminal()
	case "a":
		return m, m.toggleAssistant()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(m.chapters) {
				m.showChapter(idx)
			}
		}
	}
	return m, nil
}

// nextChapter 前进一章；已是最后一章时进入终端练习。
func (m *Model) nextChapter() tea.Cmd {
	if _, ok := m.feed.Next(m.currentChapter().ID); ok {
		m.showChapter(m.chapterIdx + 1)
		return nil
	}
	return m.openTerminal()
}

func (m *Model) showChapter(idx int) {
	if idx < 0 || idx >= len(m.chapters) {
		return
	}
	m.chapterIdx = idx
	m.view = ViewChapter
	m.termInput.Blur()
	m.resetCodeCursor()
	m.chapterPane.ShowTop(m.chapterLines())
	m.log.WithField("chapter", m.currentChapter().ID).Debug("chapter shown")
}

func (m *Model) resetCodeCursor() {
	if len(m.currentChapter().CodeBlocks()) > 0 {
		m.codeCursor = 0
	} else {
		m.codeCursor = -1
	}
}

func (m *Model) moveCodeCursor(delta int) {
	blocks := m.currentChapter().CodeBlocks()
	if len(blocks) == 0 {
		return
	}
	m.codeCursor = (m.codeCursor + delta + len(blocks)) % len(blocks)
	m.refreshChapter()
}

// selectedCode 返回当前选中代码块在章节中的下标，-1 表示无。
func (m *Model) selectedCode() int {
	blocks := m.currentChapter().CodeBlocks()
	if m.codeCursor < 0 || m.codeCursor >= len(blocks) {
		return -1
	}
	return blocks[m.codeCursor]
}

func (m *Model) chapterLines() []string {
	return render.LinesToStrings(render.RenderChapter(m.currentChapter(), render.ChapterOptions{
		Width:    m.chapterPane.Width,
		Selected: m.selectedCode(),
		Markdown: m.md,
	}))
}

func (m *Model) refreshChapter() {
	m.chapterPane.SetLines(m.chapterLines())
}

func (m *Model) viewChapter(width, height int) string {
	sidebar := panel("Chapters", m.sidebarText(), sidebarWidth, height, false)
	body := panel("", m.chapterPane.View(), width-sidebarWidth, height, !m.picking)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
}

func (m *Model) sidebarText() string {
	inner := sidebarWidth - 4
	lines := make([]string, 0, len(m.chapters)+2)
	for i, ch := range m.chapters {
		label := truncate(fmt.Sprintf("%d. %s", i+1, ch.ShortTitle()), inner-2)
		if i == m.chapterIdx && m.view == ViewChapter {
			lines = append(lines, sidebarActive.Render("▸ "+label))
			continue
		}
		lines = append(lines, sidebarItem.Render("  "+label))
	}
	lines = append(lines, "", sidebarTerminal.Render(truncate("$ Terminal practice", inner)))
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width || width < 2 {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

func (m *Model) openPicker() tea.Cmd {
	m.picking = true
	m.pickerInput.Reset()
	m.pickerItems = m.feed.Search("")
	m.pickerCursor = 0
	m.pickerInput.Focus()
	return textinput.Blink
}

func (m *Model) closePicker() {
	m.picking = false
	m.pickerInput.Blur()
}

func (m *Model) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closePicker()
		return nil
	case "enter":
		if m.pickerCursor < len(m.pickerItems) {
			m.showChapter(m.feed.Index(m.pickerItems[m.pickerCursor].ID))
		}
		m.closePicker()
		return nil
	case "up", "ctrl+p":
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
		return nil
	case "down", "ctrl+n":
		if m.pickerCursor < len(m.pickerItems)-1 {
			m.pickerCursor++
		}
		return nil
	}
	var cmd tea.Cmd
	before := m.pickerInput.Value()
	m.pickerInput, cmd = m.pickerInput.Update(msg)
	if query := m.pickerInput.Value(); query != before {
		m.pickerItems = m.feed.Search(strings.TrimSpace(query))
		m.pickerCursor = 0
	}
	return cmd
}

func (m *Model) viewPicker() string {
	lines := []string{m.pickerInput.View()}
	if len(m.pickerItems) == 0 {
		lines = append(lines, headerInfo.Render("no matching chapters"))
	}
	for i, ch := range m.pickerItems {
		if i == m.pickerCursor {
			lines = append(lines, pickerCursor.Render("▸ "+ch.Title))
			continue
		}
		lines = append(lines, "  "+ch.Title)
	}
	return pickerStyle.Render(strings.Join(lines, "\n"))
}
