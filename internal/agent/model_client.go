package agent

import (
	"context"
	"errors"
	"strings"
	"sync"

	"gitmaster/internal/logger"
)

// Conversation 是与模型服务之间的一次逻辑会话。
// 同一实例多次 Send 共享上下文，会话在实例生命周期内不会被重置。
type Conversation interface {
	// Send 发送一条用户消息，并按接收顺序把文本分片交给 onChunk。
	Send(ctx context.Context, text string, onChunk func(string)) error
}

// ErrEmptyMessage 表示没有可发送的内容。
var ErrEmptyMessage = errors.New("empty message")

// EchoConversation is an offline provider used for demos and tests.
// 它把用户输入按单词切片后回显，并保留自己的历史。
type EchoConversation struct {
	Prefix string

	mu      sync.Mutex
	history []Message
}

var _ Conversation = (*EchoConversation)(nil)

func (c *EchoConversation) Send(ctx context.Context, text string, onChunk func(string)) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}
	logger.LLMLog.Request("echo", "echo", text)
	reply := c.Prefix + text
	chunks := splitWords(reply)
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			logger.LLMLog.Error("echo", err)
			return err
		}
		logger.LLMLog.StreamChunk("echo", chunk, i)
		onChunk(chunk)
	}
	logger.LLMLog.StreamComplete("echo", len(chunks))

	c.mu.Lock()
	c.history = append(c.history,
		Message{Role: RoleUser, Content: text},
		Message{Role: RoleAssistant, Content: reply},
	)
	c.mu.Unlock()
	return nil
}

// History 返回回显会话累计的消息。
func (c *EchoConversation) History() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.history...)
}

// splitWords 保留单词后的空白，使分片拼接后与原文一致。
func splitWords(text string) []string {
	var out []string
	start := 0
	for i := 1; i < len(text); i++ {
		if text[i-1] == ' ' && text[i] != ' ' {
			out = append(out, text[start:i])
			start = i
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
