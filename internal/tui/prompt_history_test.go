package tui

import "testing"

func TestPromptHistory_BrowseAndDraft(t *testing.T) {
	var h promptHistory
	h.Add("git init")
	h.Add("git status")
	h.Add("git status")
	h.Add("  ")
	if h.Len() != 2 {
		t.Fatalf("len = %d, want 2", h.Len())
	}

	if got, _ := h.Prev("git st"); got != "git status" {
		t.Fatalf("Prev = %q", got)
	}
	if got, _ := h.Prev(""); got != "git init" {
		t.Fatalf("Prev = %q", got)
	}
	if got, _ := h.Prev(""); got != "git init" {
		t.Fatalf("Prev at oldest = %q", got)
	}
	if got, _ := h.Next(); got != "git status" {
		t.Fatalf("Next = %q", got)
	}
	if got, ok := h.Next(); !ok || got != "git st" {
		t.Fatalf("Next past newest = %q,%v, want draft", got, ok)
	}
	if _, ok := h.Next(); ok {
		t.Fatalf("Next when not browsing should report false")
	}
}

func TestPromptHistory_Cap(t *testing.T) {
	var h promptHistory
	for i := 0; i < maxPromptHistory+10; i++ {
		h.Add(string(rune('a'+i%26)) + string(rune('0'+i%10)) + string(rune('A'+i/26)))
	}
	if h.Len() != maxPromptHistory {
		t.Fatalf("len = %d, want %d", h.Len(), maxPromptHistory)
	}
}
