package main

import (
	"fmt"
	"strings"

	"gitmaster/internal/agent"
	anthropicmodel "gitmaster/internal/agent/anthropic"
	geminimodel "gitmaster/internal/agent/gemini"
	openaimodel "gitmaster/internal/agent/openai"
	"gitmaster/internal/config"
)

// loadSettings 按 文件 -> 环境变量 -> -c 覆盖 -> 命令行参数 的顺序合成配置。
// provider 改变后重新读取该 provider 的环境变量。
func loadSettings(cfgPath string, overrides []string, provider, model string) (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	before := cfg.Provider
	cfg, err = config.ApplyKVOverrides(cfg, overrides)
	if err != nil {
		return cfg, err
	}
	if p := strings.TrimSpace(provider); p != "" {
		cfg.Provider = p
	}
	cfg.Provider = config.NormalizeProvider(cfg.Provider)
	if cfg.Provider != before {
		cfg = config.ApplyEnv(cfg)
	}
	if m := strings.TrimSpace(model); m != "" {
		cfg.Model = m
	}
	return cfg, nil
}

// buildConversation 根据 provider 创建会话。API key 不在这里校验。
func buildConversation(cfg config.Config, system string) (agent.Conversation, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return geminimodel.New(geminimodel.Options{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			System:  system,
		}), nil
	case config.ProviderOpenAI:
		return openaimodel.New(openaimodel.Options{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			System:  system,
		}), nil
	case config.ProviderAnthropic:
		return anthropicmodel.New(anthropicmodel.Options{
			Token:   cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			System:  system,
		}), nil
	case config.ProviderEcho:
		return &agent.EchoConversation{Prefix: "echo: "}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
