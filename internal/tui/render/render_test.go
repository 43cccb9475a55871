package render

import (
	"strings"
	"testing"

	"gitmaster/internal/agent"
	"gitmaster/internal/content"
)

func TestHighlightBashToLinesKeepsText(t *testing.T) {
	script := "git add . \n# Stages all changes\n\ngit commit -m \"My first commit\""
	got := LinesToPlainStrings(HighlightBashToLines(script))
	want := strings.Split(script, "\n")
	if len(got) != len(want) {
		t.Fatalf("lines = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHighlightBashGitVerb(t *testing.T) {
	line := highlightBashLine("git checkout -b feature")
	if len(line.Spans) < 3 {
		t.Fatalf("spans = %#v", line.Spans)
	}
	if !line.Spans[0].Style.GetBold() {
		t.Fatalf("command not highlighted")
	}
	if line.Spans[2].Text != "checkout" || line.Spans[2].Style.GetForeground() != verbStyle.GetForeground() {
		t.Fatalf("verb span = %#v", line.Spans[2])
	}
}

func TestRenderTerminal(t *testing.T) {
	lines := []string{"Welcome", "$ git status", "On branch main"}
	got := LinesToPlainStrings(RenderTerminal(lines, 40))
	if len(got) != 3 || got[1] != "$ git status" || got[2] != "On branch main" {
		t.Fatalf("RenderTerminal = %q", got)
	}
}

func TestRenderChapterBlocks(t *testing.T) {
	ch, _ := content.Builtin().Find("intro")
	got := strings.Join(LinesToPlainStrings(RenderChapter(ch, ChapterOptions{Width: 60, Selected: -1})), "\n")
	for _, want := range []string{"1. What is GitHub?", "Pro Tip", "[image] Abstract representation of version control", "https://picsum.photos/800/400?grayscale"} {
		if !strings.Contains(got, want) {
			t.Errorf("chapter output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderChapterSelectedCode(t *testing.T) {
	ch, _ := content.Builtin().Find("basics")
	plain := LinesToPlainStrings(RenderChapter(ch, ChapterOptions{Width: 60, Selected: 1}))
	joined := strings.Join(plain, "\n")
	if !strings.Contains(joined, "bash  "+selectedCopyHint) {
		t.Fatalf("selected code block missing copy hint:\n%s", joined)
	}
	if !strings.Contains(joined, selectedCodeBar+"git init") {
		t.Fatalf("selected code body missing:\n%s", joined)
	}
	if strings.Count(joined, selectedCopyHint) != 1 {
		t.Fatalf("only one block should be selected")
	}
}

func TestRenderMessagesPending(t *testing.T) {
	msgs := []agent.Message{
		{Role: agent.RoleUser, Content: "hi"},
		{Role: agent.RoleAssistant},
	}
	got := LinesToPlainStrings(RenderMessages(msgs, 40, nil, "thinking…"))
	want := []string{"› hi", "", "• thinking…"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("RenderMessages = %q, want %q", got, want)
	}
}

func TestMarkdownNottyRendersText(t *testing.T) {
	md := NewMarkdown("notty")
	got := strings.Join(md.RenderStrings("Use **git status** often.", 40), "\n")
	if !strings.Contains(got, "git status") {
		t.Fatalf("markdown output = %q", got)
	}
	var nilMD *Markdown
	if lines := nilMD.RenderStrings("plain text", 40); len(lines) != 1 || lines[0] != "plain text" {
		t.Fatalf("nil markdown = %q", lines)
	}
}
