package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#F97316")
	muted  = lipgloss.Color("#7D7A85")
	border = lipgloss.Color("#5E6472")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	headerInfo  = lipgloss.NewStyle().Foreground(muted)
	statusStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	ackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	sidebarItem     = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))
	sidebarActive   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	sidebarTerminal = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))

	pickerCursor = lipgloss.NewStyle().Foreground(accent).Bold(true)
	pickerStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

// panel 以圆角边框包裹内容；width/height 为含边框的外部尺寸。
func panel(title, body string, width, height int, focused bool) string {
	color := border
	if focused {
		color = accent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(maxInt(1, width-2)).
		Height(maxInt(1, height-2))
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Foreground(color).Render(title), body)
	}
	return style.Render(body)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
