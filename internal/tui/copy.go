package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// copySelected 把选中的代码块写入系统剪贴板。
func (m *Model) copySelected() tea.Cmd {
	idx := m.selectedCode()
	if idx < 0 {
		m.status = "no code block in this chapter"
		return nil
	}
	text := m.currentChapter().Blocks[idx].Content
	write := m.clipboard
	return func() tea.Msg {
		return copiedMsg{Err: write(text)}
	}
}

// handleCopied 显示复制结果；成功提示在 copyAckPeriod 后自动清除。
func (m *Model) handleCopied(msg copiedMsg) tea.Cmd {
	if msg.Err != nil {
		m.ack = ""
		m.status = fmt.Sprintf("copy failed: %v", msg.Err)
		m.log.WithError(msg.Err).Warn("clipboard write failed")
		return nil
	}
	m.status = ""
	m.ack = "Copied!"
	m.ackSeq++
	seq := m.ackSeq
	return tea.Tick(copyAckPeriod, func(time.Time) tea.Msg {
		return copyAckExpiredMsg{Seq: seq}
	})
}
