package tui

import (
	"errors"

	"gitmaster/internal/agent"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回 TUI 运行后的必要信息。
type Result struct {
	ChapterID      string
	View           View
	CommandsRun    int
	AssistantTurns int
}

// Run 封装 Bubble Tea 入口，退出时取消未完成的助手请求。
func Run(opts Options, programOptions ...tea.ProgramOption) (Result, error) {
	model := New(opts)
	defer model.Close()

	programOptions = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, programOptions...)
	final, err := tea.NewProgram(model, programOptions...).Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return m.Result(), nil
}

// Result 汇总本次运行，用于退出时写日志。
func (m *Model) Result() Result {
	turns := 0
	for _, msg := range m.transcript.Messages() {
		if msg.Role == agent.RoleUser {
			turns++
		}
	}
	return Result{
		ChapterID:      m.currentChapter().ID,
		View:           m.view,
		CommandsRun:    m.commandsRun,
		AssistantTurns: turns,
	}
}
