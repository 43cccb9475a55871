package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle     = lipgloss.NewStyle().Faint(true)
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")).Bold(true)
	verbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))
	stringStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80"))
)

// HighlightBashToLines 使用轻量规则高亮 Bash：命令名、git 子命令、参数、字符串与注释。
func HighlightBashToLines(script string) []Line {
	raw := strings.Split(script, "\n")
	lines := make([]Line, 0, len(raw))
	for _, rawLine := range raw {
		lines = append(lines, highlightBashLine(rawLine))
	}
	return lines
}

func highlightBashLine(rawLine string) Line {
	if strings.TrimSpace(rawLine) == "" {
		return Line{Spans: []Span{{Text: rawLine}}}
	}
	if strings.HasPrefix(strings.TrimSpace(rawLine), "#") {
		return Line{Spans: []Span{{Text: rawLine, Style: dimStyle}}}
	}
	var spans []Span
	rest := rawLine
	pos := 0
	cmd := ""
	inQuote := false
	for _, tok := range strings.Fields(rawLine) {
		idx := strings.Index(rest, tok)
		if idx > 0 {
			spans = append(spans, Span{Text: rest[:idx]})
		}
		style := lipgloss.Style{}
		switch {
		case inQuote || startsQuote(tok):
			style = stringStyle
			inQuote = quoteOpen(tok, inQuote)
		case isOperator(tok):
			style = dimStyle
			pos = -1
		case strings.HasPrefix(tok, "-"):
			style = flagStyle
		case pos == 0:
			style = commandStyle
			cmd = tok
		case pos == 1 && cmd == "git":
			style = verbStyle
		}
		spans = append(spans, Span{Text: tok, Style: style})
		rest = rest[idx+len(tok):]
		pos++
	}
	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return Line{Spans: spans}
}

func startsQuote(tok string) bool {
	return strings.HasPrefix(tok, "\"") || strings.HasPrefix(tok, "'")
}

// quoteOpen 报告处理完 tok 后是否仍处于未闭合的引号中。
func quoteOpen(tok string, open bool) bool {
	n := strings.Count(tok, "\"") + strings.Count(tok, "'")
	if n%2 == 1 {
		return !open
	}
	return open
}

func isOperator(tok string) bool {
	switch tok {
	case "&&", "||", "|", "&", ";", ">", ">>", "<", "<<":
		return true
	default:
		return false
	}
}
