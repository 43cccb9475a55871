package tui

import (
	"gitmaster/internal/tui/render"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pendingLabel = " Thinking…"

func (m *Model) toggleAssistant() tea.Cmd {
	if m.relay == nil {
		m.status = "assistant is disabled"
		return nil
	}
	m.assistantOpen = !m.assistantOpen
	if !m.assistantOpen {
		m.chatInput.Blur()
		m.layout()
		return nil
	}
	m.layout()
	m.chatPane.GotoBottom()
	if m.transcript.Open() {
		return nil
	}
	m.chatInput.Focus()
	return textinput.Blink
}

func (m *Model) updateAssistant(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if scrollKey(&m.chatPane, key) {
		return nil
	}
	switch key {
	case "esc", "ctrl+a":
		return m.toggleAssistant()
	case "enter":
		return m.sendAssistant()
	}
	if m.transcript.Open() {
		return nil
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return cmd
}

// sendAssistant 提交输入框内容。请求进行中或内容为空时不做任何事。
func (m *Model) sendAssistant() tea.Cmd {
	if m.transcript.Open() {
		return nil
	}
	text := m.chatInput.Value()
	stream, ok := m.relay.Stream(m.ctx, text)
	if !ok {
		return nil
	}
	if err := m.transcript.Begin(text, m.now()); err != nil {
		m.err = err
		return nil
	}
	m.stream = stream
	m.chatInput.Reset()
	m.chatInput.Blur()
	m.chatPane.GotoBottom()
	m.refreshChat()
	return tea.Batch(waitChunk(stream), m.spin.Tick)
}

func waitChunk(stream <-chan string) tea.Cmd {
	if stream == nil {
		return nil
	}
	return func() tea.Msg {
		chunk, ok := <-stream
		if !ok {
			return streamDoneMsg{}
		}
		return chunkMsg{Text: chunk}
	}
}

func (m *Model) finishStream() {
	m.transcript.Close()
	m.stream = nil
	m.refreshChat()
	if m.assistantOpen {
		m.chatInput.Focus()
	}
}

func (m *Model) refreshChat() {
	pending := m.spin.View() + pendingLabel
	lines := render.RenderMessages(m.transcript.Messages(), m.chatPane.Width, m.md, pending)
	m.chatPane.SetLines(render.LinesToStrings(lines))
}

func (m *Model) viewAssistant(width, height int) string {
	input := m.chatInput.View()
	if m.transcript.Open() {
		input = headerInfo.Render("waiting for reply…")
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.chatPane.View(), input)
	return panel("GitMaster AI", body, width, height, true)
}
