package tui

import (
	"gitmaster/internal/tui/render"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) openTerminal() tea.Cmd {
	m.view = ViewTerminal
	m.refreshTerminal()
	m.termInput.Focus()
	return textinput.Blink
}

func (m *Model) updateTerminal(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if scrollKey(&m.termPane, key) {
		return nil
	}
	switch key {
	case "esc":
		m.showChapter(m.chapterIdx)
		return nil
	case "ctrl+a":
		return m.toggleAssistant()
	case "ctrl+r":
		m.sim.Reset(m.termBuf)
		m.termInput.Reset()
		m.termHistory.ResetBrowsing()
		m.refreshTerminal()
		return nil
	case "up":
		if prev, ok := m.termHistory.Prev(m.termInput.Value()); ok {
			m.termInput.SetValue(prev)
			m.termInput.CursorEnd()
		}
		return nil
	case "down":
		if next, ok := m.termHistory.Next(); ok {
			m.termInput.SetValue(next)
			m.termInput.CursorEnd()
		}
		return nil
	case "enter":
		m.submitTerminal()
		return nil
	}
	var cmd tea.Cmd
	m.termInput, cmd = m.termInput.Update(msg)
	return cmd
}

// submitTerminal 执行输入行并清空输入框，无论命令是否被识别。
func (m *Model) submitTerminal() {
	input := m.termInput.Value()
	m.termInput.Reset()
	res := m.sim.Execute(m.termBuf, input)
	if !res.Ignored {
		m.commandsRun++
		m.termHistory.Add(res.Input)
	} else {
		m.termHistory.ResetBrowsing()
	}
	m.termPane.GotoBottom()
	m.refreshTerminal()
}

func (m *Model) refreshTerminal() {
	lines := render.RenderTerminal(m.termBuf.Lines(), m.termPane.Width)
	m.termPane.SetLines(render.LinesToStrings(lines))
}

func (m *Model) viewTerminal(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Left, m.termPane.View(), m.termInput.View())
	return panel("Terminal practice", body, width, height, !m.assistantOpen)
}
