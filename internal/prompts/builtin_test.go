package prompts

import (
	"strings"
	"testing"
)

func TestBuiltinPromptsLoaded(t *testing.T) {
	for _, name := range []Name{PromptSystem, PromptGreeting, PromptPing} {
		text, ok := Builtin(name)
		if !ok || strings.TrimSpace(text) == "" {
			t.Fatalf("missing builtin prompt %q", name)
		}
	}
	if _, ok := Builtin("nope"); ok {
		t.Fatalf("unknown prompt should not resolve")
	}
}

func TestSystemInstruction(t *testing.T) {
	system := SystemInstruction()
	for _, want := range []string{"GitMaster AI", "concise", "bash/git", "Markdown"} {
		if !strings.Contains(system, want) {
			t.Fatalf("system instruction should mention %q", want)
		}
	}
	if got := Greeting(); got != "Hi! I'm GitMaster AI. Ask me anything about Git or GitHub!" {
		t.Fatalf("Greeting() = %q", got)
	}
	if !strings.Contains(Ping(), "pong") {
		t.Fatalf("Ping() = %q", Ping())
	}
}
