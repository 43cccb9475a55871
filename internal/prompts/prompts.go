package prompts

// SystemInstruction 是助手的固定人设与回复风格约束，每个会话只提供一次。
func SystemInstruction() string {
	return builtin[PromptSystem]
}

// Greeting 是助手面板打开时的第一条消息。
func Greeting() string {
	return builtin[PromptGreeting]
}

// Ping 是连通性检查使用的系统提示。
func Ping() string {
	return builtin[PromptPing]
}
