package agent

import (
	"strings"
	"sync"
)

// History 是客户端维护的对话历史，供不在服务端保存上下文的提供方使用。
// 只有一次问答成功完成后才写入，失败的请求不会污染上下文。
type History struct {
	mu       sync.Mutex
	messages []Message
}

// Snapshot 返回当前历史并附加待发送的用户消息。
func (h *History) Snapshot(pending string) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Message, 0, len(h.messages)+1)
	out = append(out, h.messages...)
	if text := strings.TrimSpace(pending); text != "" {
		out = append(out, Message{Role: RoleUser, Content: text})
	}
	return out
}

// Commit 记录一次完整的问答。
func (h *History) Commit(user, assistant string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages,
		Message{Role: RoleUser, Content: user},
		Message{Role: RoleAssistant, Content: assistant},
	)
}

// Len 返回已记录的消息数量。
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}
