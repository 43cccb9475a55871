package assistant

import (
	"errors"
	"time"

	"gitmaster/internal/agent"
	"gitmaster/internal/prompts"
)

// ErrStreamOpen is returned by Begin while an assistant reply is still open.
var ErrStreamOpen = errors.New("assistant reply still streaming")

// Transcript is the ordered message list shown in the assistant panel.
// It is seeded with the greeting and only grows.
type Transcript struct {
	messages []agent.Message
	open     bool
}

func NewTranscript(now time.Time) *Transcript {
	return &Transcript{
		messages: []agent.Message{{
			Role:      agent.RoleAssistant,
			Content:   prompts.Greeting(),
			Timestamp: now,
		}},
	}
}

// Begin records the user's message and opens an empty assistant message that
// subsequent chunks fold into.
func (t *Transcript) Begin(text string, now time.Time) error {
	if t.open {
		return ErrStreamOpen
	}
	t.messages = append(t.messages,
		agent.Message{Role: agent.RoleUser, Content: text, Timestamp: now},
		agent.Message{Role: agent.RoleAssistant, Timestamp: now},
	)
	t.open = true
	return nil
}

// AppendChunk extends the open assistant message. Chunks arriving with no
// open message are dropped.
func (t *Transcript) AppendChunk(chunk string) {
	if !t.open {
		return
	}
	t.messages[len(t.messages)-1].Content += chunk
}

func (t *Transcript) Close() { t.open = false }

func (t *Transcript) Open() bool { return t.open }

func (t *Transcript) Messages() []agent.Message {
	return append([]agent.Message(nil), t.messages...)
}

func (t *Transcript) Last() agent.Message {
	return t.messages[len(t.messages)-1]
}

// Pending reports whether the open assistant message has no text yet.
func (t *Transcript) Pending() bool {
	return t.open && t.Last().Content == ""
}
