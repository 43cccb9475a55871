package assistant

import (
	"errors"
	"testing"
	"time"

	"gitmaster/internal/agent"
	"gitmaster/internal/prompts"
)

func TestTranscript_FoldsChunksIntoOpenMessage(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tr := NewTranscript(now)
	if got := tr.Last(); got.Role != agent.RoleAssistant || got.Content != prompts.Greeting() {
		t.Fatalf("seed message = %#v", got)
	}

	if err := tr.Begin("How do I undo a commit?", now); err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if !tr.Pending() {
		t.Fatalf("expected pending placeholder")
	}
	tr.AppendChunk("Use ")
	tr.AppendChunk("`git revert`.")
	tr.Close()

	msgs := tr.Messages()
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if msgs[1].Role != agent.RoleUser || msgs[1].Content != "How do I undo a commit?" {
		t.Fatalf("user message = %#v", msgs[1])
	}
	if msgs[2].Content != "Use `git revert`." {
		t.Fatalf("assistant message = %q", msgs[2].Content)
	}
	if tr.Open() || tr.Pending() {
		t.Fatalf("transcript should be closed")
	}
}

func TestTranscript_BeginWhileOpenFails(t *testing.T) {
	tr := NewTranscript(time.Now())
	if err := tr.Begin("one", time.Now()); err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if err := tr.Begin("two", time.Now()); !errors.Is(err, ErrStreamOpen) {
		t.Fatalf("second Begin() = %v, want ErrStreamOpen", err)
	}
	if n := len(tr.Messages()); n != 3 {
		t.Fatalf("messages = %d, want 3", n)
	}
}

func TestTranscript_ChunkWithoutOpenMessageDropped(t *testing.T) {
	tr := NewTranscript(time.Now())
	tr.AppendChunk("stray")
	if tr.Last().Content != prompts.Greeting() {
		t.Fatalf("greeting modified: %q", tr.Last().Content)
	}
}
