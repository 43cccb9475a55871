package agent

import (
	"context"
	"strings"
	"testing"
)

func TestEchoConversation_ChunksReassemble(t *testing.T) {
	conv := &EchoConversation{Prefix: "echo: "}
	var chunks []string
	if err := conv.Send(context.Background(), "  how do I  branch? ", func(c string) { chunks = append(chunks, c) }); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := strings.Join(chunks, ""); got != "echo: how do I  branch?" {
		t.Fatalf("joined chunks = %q", got)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %#v", chunks)
	}
	if n := len(conv.History()); n != 2 {
		t.Fatalf("history len = %d, want 2", n)
	}
}

func TestEchoConversation_CanceledContext(t *testing.T) {
	conv := &EchoConversation{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := conv.Send(ctx, "hello", func(string) {})
	if err == nil {
		t.Fatalf("expected error for canceled context")
	}
	if len(conv.History()) != 0 {
		t.Fatalf("failed exchange must not be recorded")
	}
}

func TestHistory_SnapshotAndCommit(t *testing.T) {
	var h History
	if got := h.Snapshot("  "); len(got) != 0 {
		t.Fatalf("empty pending should not be added: %#v", got)
	}
	h.Commit("q1", "a1")
	snap := h.Snapshot("q2")
	if len(snap) != 3 || snap[2].Content != "q2" || snap[1].Role != RoleAssistant {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
	if h.Len() != 2 {
		t.Fatalf("Snapshot must not record pending message, Len() = %d", h.Len())
	}
}
