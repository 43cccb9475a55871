package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitmaster/internal/assistant"
	"gitmaster/internal/content"
	"gitmaster/internal/features"
	"gitmaster/internal/logger"
	"gitmaster/internal/simulator"
	"gitmaster/internal/tui/render"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View 是主区域当前显示的界面。
type View int

const (
	ViewChapter View = iota
	ViewTerminal
)

func (v View) String() string {
	if v == ViewTerminal {
		return "terminal"
	}
	return "chapter"
}

const (
	sidebarWidth  = 30
	headerHeight  = 1
	statusHeight  = 1
	copyAckPeriod = 2 * time.Second
)

type Options struct {
	Feed      *content.Feed
	Simulator *simulator.Simulator
	// Relay 为 nil 或 assistant 特性关闭时助手面板不可用。
	Relay    *assistant.Relay
	Features features.Set

	ChapterID       string
	StartInTerminal bool
	// MarkdownStyle 传给 glamour，空值时自动检测终端背景。
	MarkdownStyle string

	Clipboard func(string) error
	Now       func() time.Time
}

type chunkMsg struct {
	Text string
}

type streamDoneMsg struct{}

type copiedMsg struct {
	Err error
}

type copyAckExpiredMsg struct {
	Seq int
}

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    *logger.LogEntry

	feed     *content.Feed
	chapters []content.Chapter
	sim      *simulator.Simulator
	relay    *assistant.Relay
	features features.Set
	md       *render.Markdown

	clipboard func(string) error
	now       func() time.Time

	view   View
	width  int
	height int

	// chapter reader
	chapterIdx  int
	codeCursor  int
	chapterPane render.Pane

	// chapter picker
	picking      bool
	pickerInput  textinput.Model
	pickerItems  []content.Chapter
	pickerCursor int

	// practice terminal
	termBuf     *simulator.Buffer
	termInput   textinput.Model
	termPane    render.Pane
	termHistory promptHistory
	commandsRun int

	// assistant panel
	assistantOpen  bool
	assistantWidth int
	transcript     *assistant.Transcript
	chatInput      textinput.Model
	chatPane       render.Pane
	stream         <-chan string
	spin           spinner.Model

	ack    string
	ackSeq int
	status string
	err    error
}

func New(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	feed := opts.Feed
	if feed == nil {
		feed = content.Builtin()
	}
	sim := opts.Simulator
	if sim == nil {
		sim = simulator.New(simulator.DefaultTable(), simulator.Options{})
	}
	set := opts.Features
	if set == nil {
		set = features.Resolve(nil)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}
	var md *render.Markdown
	if set.Enabled(features.Markdown) {
		md = render.NewMarkdown(opts.MarkdownStyle)
	}
	relay := opts.Relay
	if !set.Enabled(features.Assistant) {
		relay = nil
	}

	termInput := textinput.New()
	termInput.Prompt = "$ "
	termInput.Placeholder = "type a git command, e.g. git status"
	termInput.CharLimit = 256

	pickerInput := textinput.New()
	pickerInput.Prompt = "/ "
	pickerInput.Placeholder = "search chapters"

	chatInput := textinput.New()
	chatInput.Prompt = "› "
	chatInput.Placeholder = "Ask about Git or GitHub…"

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(accent)

	m := &Model{
		ctx:         ctx,
		cancel:      cancel,
		log:         logger.Named("tui"),
		feed:        feed,
		chapters:    feed.Chapters(),
		sim:         sim,
		relay:       relay,
		features:    set,
		md:          md,
		clipboard:   clip,
		now:         now,
		width:       100,
		height:      30,
		chapterPane: render.NewPane(60, 20),
		pickerInput: pickerInput,
		termBuf:     simulator.NewBuffer(),
		termInput:   termInput,
		termPane:    render.NewPane(60, 20),
		transcript:  assistant.NewTranscript(now()),
		chatInput:   chatInput,
		chatPane:    render.NewPane(40, 20),
		spin:        spin,
	}
	if idx := feed.Index(opts.ChapterID); idx >= 0 {
		m.chapterIdx = idx
	} else if opts.ChapterID != "" {
		m.status = fmt.Sprintf("unknown chapter %q, showing %q", opts.ChapterID, m.chapters[0].ID)
	}
	m.resetCodeCursor()
	if opts.StartInTerminal {
		m.view = ViewTerminal
		m.termInput.Focus()
	}
	m.layout()
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.view == ViewTerminal {
		return textinput.Blink
	}
	return nil
}

// Close 取消所有进行中的助手请求。
func (m *Model) Close() {
	m.cancel()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case chunkMsg:
		m.transcript.AppendChunk(msg.Text)
		m.refreshChat()
		return m, waitChunk(m.stream)
	case streamDoneMsg:
		m.finishStream()
		return m, nil
	case spinner.TickMsg:
		if !m.transcript.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		m.refreshChat()
		return m, cmd
	case copiedMsg:
		return m, m.handleCopied(msg)
	case copyAckExpiredMsg:
		if msg.Seq == m.ackSeq {
			m.ack = ""
		}
		return m, nil
	case tea.MouseMsg:
		return m, m.focusedPane().HandleUpdate(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch {
		case m.picking:
			return m, m.updatePicker(msg)
		case m.assistantOpen:
			return m, m.updateAssistant(msg)
		case m.view == ViewTerminal:
			return m, m.updateTerminal(msg)
		default:
			return m.updateChapter(msg)
		}
	}
	return m, nil
}

func (m *Model) focusedPane() *render.Pane {
	switch {
	case m.assistantOpen:
		return &m.chatPane
	case m.view == ViewTerminal:
		return &m.termPane
	default:
		return &m.chapterPane
	}
}

func scrollKey(p *render.Pane, key string) bool {
	switch key {
	case "pgup":
		p.PageUp()
	case "pgdown":
		p.PageDown()
	case "home":
		p.GotoTop()
	case "end":
		p.GotoBottom()
	default:
		return false
	}
	return true
}

// layout 按窗口尺寸分配各区域并重绘内容。
func (m *Model) layout() {
	mainWidth := m.width
	if m.assistantOpen {
		m.assistantWidth = maxInt(36, m.width*2/5)
		mainWidth = maxInt(40, m.width-m.assistantWidth)
	}
	bodyHeight := maxInt(6, m.height-headerHeight-statusHeight)

	m.chapterPane.Resize(maxInt(10, mainWidth-sidebarWidth-4), bodyHeight-2)
	m.termPane.Resize(maxInt(10, mainWidth-4), bodyHeight-4)
	m.termInput.Width = maxInt(10, mainWidth-8)
	m.chatPane.Resize(maxInt(10, m.assistantWidth-4), maxInt(1, bodyHeight-4))
	m.chatInput.Width = maxInt(10, m.assistantWidth-8)
	m.pickerInput.Width = maxInt(10, mainWidth/2)

	m.refreshChapter()
	m.refreshTerminal()
	m.refreshChat()
}

func (m *Model) mainWidth() int {
	if m.assistantOpen {
		return maxInt(40, m.width-m.assistantWidth)
	}
	return m.width
}

func (m *Model) View() string {
	bodyHeight := maxInt(6, m.height-headerHeight-statusHeight)
	var main string
	if m.view == ViewTerminal {
		main = m.viewTerminal(m.mainWidth(), bodyHeight)
	} else {
		main = m.viewChapter(m.mainWidth(), bodyHeight)
	}
	if m.picking {
		main = lipgloss.JoinVertical(lipgloss.Left, main, m.viewPicker())
	}
	if m.assistantOpen {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, m.viewAssistant(m.assistantWidth, bodyHeight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), main, m.viewStatus())
}

func (m *Model) viewHeader() string {
	info := fmt.Sprintf("chapter %d/%d • %s", m.chapterIdx+1, len(m.chapters), m.view)
	if m.relay != nil && m.relay.InFlight() {
		info += " • assistant " + m.spin.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, headerStyle.Render("GitMaster"), headerInfo.Render(info))
}

func (m *Model) viewStatus() string {
	var hints string
	switch {
	case m.picking:
		hints = "↑/↓ move • enter open • esc cancel"
	case m.assistantOpen:
		hints = "enter send • pgup/pgdn scroll • esc close"
	case m.view == ViewTerminal:
		hints = "enter run • ↑/↓ history • ctrl+r reset • ctrl+a assistant • esc chapters"
	default:
		hints = "n/→ next • p/← prev • / find • [/] code • c copy • t terminal • a assistant • q quit"
	}
	parts := []string{hints}
	if m.ack != "" {
		parts = append(parts, ackStyle.Render(m.ack))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}
	return statusStyle.Width(maxInt(20, m.width)).Render(strings.Join(parts, " • "))
}
