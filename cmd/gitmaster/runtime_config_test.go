package main

import (
	"os"
	"path/filepath"
	"testing"

	"gitmaster/internal/agent"
	anthropicmodel "gitmaster/internal/agent/anthropic"
	geminimodel "gitmaster/internal/agent/gemini"
	openaimodel "gitmaster/internal/agent/openai"
	"gitmaster/internal/config"
)

// isolateEnv 让测试不读取真实的 HOME 与 provider 环境变量。
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{
		"API_KEY", "GEMINI_API_KEY", "GEMINI_BASE_URL",
		"OPENAI_API_KEY", "OPENAI_BASE_URL",
		"ANTHROPIC_AUTH_TOKEN", "ANTHROPIC_API_KEY", "ANTHROPIC_BASE_URL",
	} {
		t.Setenv(name, "")
	}
	return home
}

func TestLoadSettings_ProviderFlagRereadsEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, err := loadSettings("", nil, "OpenAI", "gpt-x")
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.Provider != config.ProviderOpenAI || cfg.APIKey != "sk-openai" || cfg.Model != "gpt-x" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestLoadSettings_OverridesBeatFile(t *testing.T) {
	home := isolateEnv(t)
	path := filepath.Join(home, "cfg.toml")
	if err := os.WriteFile(path, []byte("provider = \"echo\"\nmodel = \"file-model\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadSettings(path, []string{"model=override", "request_timeout_seconds=7"}, "", "")
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.Provider != config.ProviderEcho || cfg.Model != "override" || cfg.RequestTimeoutSeconds != 7 {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestLoadSettings_BadOverride(t *testing.T) {
	isolateEnv(t)
	if _, err := loadSettings("", []string{"request_timeout_seconds=soon"}, "", ""); err == nil {
		t.Fatalf("expected error for invalid override")
	}
}

func TestBuildConversation_Providers(t *testing.T) {
	cases := []struct {
		provider string
		check    func(agent.Conversation) bool
	}{
		{config.ProviderGemini, func(c agent.Conversation) bool { _, ok := c.(*geminimodel.Client); return ok }},
		{config.ProviderOpenAI, func(c agent.Conversation) bool { _, ok := c.(*openaimodel.Client); return ok }},
		{config.ProviderAnthropic, func(c agent.Conversation) bool { _, ok := c.(*anthropicmodel.Client); return ok }},
		{config.ProviderEcho, func(c agent.Conversation) bool { _, ok := c.(*agent.EchoConversation); return ok }},
	}
	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			conv, err := buildConversation(config.Config{Provider: tc.provider}, "system")
			if err != nil {
				t.Fatalf("buildConversation: %v", err)
			}
			if !tc.check(conv) {
				t.Fatalf("unexpected conversation type %T", conv)
			}
		})
	}
	if _, err := buildConversation(config.Config{Provider: "bard"}, ""); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
