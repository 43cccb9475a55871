package prompts

import (
	"embed"
	"strings"
)

//go:embed text/*.md
var textFS embed.FS

// Name 是内置提示词文件名（不含扩展名）。
type Name string

const (
	PromptSystem   Name = "system"
	PromptGreeting Name = "greeting"
	PromptPing     Name = "ping"
)

var builtin = mustLoad(PromptSystem, PromptGreeting, PromptPing)

func mustLoad(names ...Name) map[Name]string {
	out := make(map[Name]string, len(names))
	for _, name := range names {
		data, err := textFS.ReadFile("text/" + string(name) + ".md")
		if err != nil {
			panic("prompts: " + err.Error())
		}
		out[name] = strings.TrimSpace(string(data))
	}
	return out
}

// Builtin 按名字返回内置提示词。
func Builtin(name Name) (string, bool) {
	text, ok := builtin[name]
	return text, ok
}
