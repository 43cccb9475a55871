package agent

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message 是对话记录中的一条消息。
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}
