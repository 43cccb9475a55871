package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gitmaster/internal/agent"
	"gitmaster/internal/prompts"
)

func pingMain(root rootArgs, args []string) {
	if err := runPing(root, args, os.Stdout); err != nil {
		log.Fatalf("ping failed: %v", err)
	}
}

// runPing 向当前 provider 发送一次 ping，用于检查 key 与 base_url。
func runPing(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfgPath string
	var providerOverride string
	var modelOverride string
	var baseURLOverride string
	var apiKeyOverride string
	var timeoutSeconds int

	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.gitmaster/config.toml)")
	fs.StringVar(&providerOverride, "provider", "", "Provider name (default from config)")
	fs.StringVar(&modelOverride, "model", "", "Model name (default from config)")
	fs.StringVar(&baseURLOverride, "base-url", "", "Override base URL (trailing /v1 is ok)")
	fs.StringVar(&apiKeyOverride, "api-key", "", "Override API key (prefer config.toml)")
	fs.IntVar(&timeoutSeconds, "timeout", 0, "Timeout seconds (default from config, else 30)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettings(cfgPath, root.overrides, providerOverride, modelOverride)
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(baseURLOverride); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(apiKeyOverride); v != "" {
		cfg.APIKey = v
	}

	timeout := time.Duration(timeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = cfg.RequestTimeout()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := agent.CheckReachable(ctx, cfg.BaseURL); err != nil {
		return fmt.Errorf("base_url unreachable: %w", err)
	}
	conv, err := buildConversation(cfg, prompts.Ping())
	if err != nil {
		return err
	}
	var reply strings.Builder
	if err := conv.Send(ctx, "ping", func(chunk string) { reply.WriteString(chunk) }); err != nil {
		return fmt.Errorf("%s: %w", cfg.Provider, err)
	}
	_, _ = fmt.Fprintf(out, "ok: %s\n", strings.TrimSpace(reply.String()))
	return nil
}
