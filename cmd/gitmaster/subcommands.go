package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"gitmaster/internal/assistant"
	"gitmaster/internal/config"
	"gitmaster/internal/content"
	"gitmaster/internal/features"
	"gitmaster/internal/prompts"
	"gitmaster/internal/simulator"
	"gitmaster/internal/tui/render"
)

func simMain(args []string) {
	if err := runSim(args, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("sim: %v", err)
	}
}

// runSim 在一个新的缓冲上依次执行命令并打印最终缓冲。
// 没有位置参数时从 in 逐行读取命令。
func runSim(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var strict bool
	fs.BoolVar(&strict, "strict-commit", false, "Require a message after git commit -m")
	if err := fs.Parse(args); err != nil {
		return err
	}

	commands := fs.Args()
	if len(commands) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			commands = append(commands, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read commands: %w", err)
		}
	}

	sim := simulator.New(simulator.DefaultTable(), simulator.Options{StrictCommit: strict})
	buf := simulator.NewBuffer()
	for _, cmd := range commands {
		sim.Execute(buf, cmd)
	}
	for _, line := range buf.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func askMain(root rootArgs, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := runAsk(ctx, root, args, os.Stdout); err != nil {
		log.Fatalf("ask: %v", err)
	}
}

var errAssistantFailed = errors.New("assistant request failed, see logs/gitmaster.log")

// runAsk 把一个问题交给助手，分片直接写到 out。
func runAsk(ctx context.Context, root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var cfgPath, provider, model string
	var overrides stringSlice
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.gitmaster/config.toml)")
	fs.StringVar(&provider, "provider", "", "Provider name (default from config)")
	fs.StringVar(&model, "model", "", "Model name (default from config)")
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	question := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if question == "" {
		return errors.New("usage: gitmaster ask <question>")
	}

	cfg, err := loadSettings(cfgPath, prependOverrides(root.overrides, overrides), provider, model)
	if err != nil {
		return err
	}
	if !features.Resolve(cfg.Features).Enabled(features.Assistant) {
		return errors.New("assistant feature is disabled")
	}
	conv, err := buildConversation(cfg, prompts.SystemInstruction())
	if err != nil {
		return err
	}
	relay := assistant.NewRelay(assistant.RelayOptions{
		Conversation: conv,
		Timeout:      cfg.RequestTimeout(),
	})

	var last string
	relay.Send(ctx, question, func(chunk string) {
		last = chunk
		_, _ = io.WriteString(out, chunk)
	})
	_, _ = fmt.Fprintln(out)
	if last == assistant.ErrorNotice {
		return errAssistantFailed
	}
	return nil
}

func chaptersMain(root rootArgs, args []string) {
	if err := runChapters(root, args, os.Stdout); err != nil {
		log.Fatalf("chapters: %v", err)
	}
}

// runChapters 列出章节；带 --id 时以纯文本输出该章节内容。
func runChapters(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("chapters", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var cfgPath, id string
	var width int
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.gitmaster/config.toml)")
	fs.StringVar(&id, "id", "", "Print the chapter with this id")
	fs.IntVar(&width, "width", 80, "Wrap width for --id output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadSettings(cfgPath, root.overrides, "", "")
	if err != nil {
		return err
	}
	feed, err := content.LoadOrBuiltin(cfg.ChaptersFile)
	if err != nil {
		return err
	}

	if id == "" {
		for _, ch := range feed.Chapters() {
			fmt.Fprintf(out, "%s\t%s\n", ch.ID, ch.Title)
		}
		return nil
	}
	ch, ok := feed.Find(id)
	if !ok {
		return fmt.Errorf("unknown chapter %q", id)
	}
	lines := render.RenderChapter(ch, render.ChapterOptions{Width: width, Selected: -1})
	for _, line := range render.LinesToPlainStrings(lines) {
		fmt.Fprintln(out, line)
	}
	return nil
}

func featuresMain(root rootArgs, args []string) {
	if err := runFeatures(root, args, os.Stdout); err != nil {
		log.Fatalf("features: %v", err)
	}
}

func runFeatures(root rootArgs, args []string, out io.Writer) error {
	var cfgPath string
	var overrides stringSlice
	fs := flag.NewFlagSet("features", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.gitmaster/config.toml)")
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadSettings(cfgPath, prependOverrides(root.overrides, overrides), "", "")
	if err != nil {
		return err
	}
	set := features.Resolve(cfg.Features)
	for _, spec := range features.Specs {
		fmt.Fprintf(out, "%s\t%s\t%t\t%s\n", spec.Key, spec.Stage, set.Enabled(spec.Key), spec.Summary)
	}
	return nil
}

func loginMain(root rootArgs, args []string) {
	if err := runLogin(args, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("login: %v", err)
	}
}

// runLogin 把 API key 写入配置文件。`login status` 只报告是否已配置。
func runLogin(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var cfgPath, provider string
	var withAPIKey bool
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.gitmaster/config.toml)")
	fs.StringVar(&provider, "provider", "", "Provider the key belongs to (default from config)")
	fs.BoolVar(&withAPIKey, "with-api-key", false, "Read the API key from stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		return err
	}
	if fs.Arg(0) == "status" {
		if strings.TrimSpace(config.ApplyEnv(cfg).APIKey) == "" {
			fmt.Fprintf(out, "not logged in (%s)\n", cfg.Provider)
		} else {
			fmt.Fprintf(out, "api key configured (%s)\n", cfg.Provider)
		}
		return nil
	}

	var key string
	if withAPIKey {
		key, err = readTokenFromStdin(in)
	} else {
		fmt.Fprint(out, "Enter API key: ")
		key, err = promptToken(in)
	}
	if err != nil {
		return err
	}
	if p := strings.TrimSpace(provider); p != "" {
		cfg.Provider = config.NormalizeProvider(p)
	}
	cfg.APIKey = key
	if err := config.Save(cfg.Source, cfg); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	fmt.Fprintln(out, "API key saved.")
	return nil
}

func logoutMain(root rootArgs, args []string) {
	if err := runLogout(args, os.Stdout); err != nil {
		log.Fatalf("logout: %v", err)
	}
}

func runLogout(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var cfgPath string
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.gitmaster/config.toml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		fmt.Fprintln(out, "no stored API key")
		return nil
	}
	cfg.APIKey = ""
	if err := config.Save(cfg.Source, cfg); err != nil {
		return fmt.Errorf("clear api key: %w", err)
	}
	fmt.Fprintln(out, "API key removed.")
	return nil
}

func readTokenFromStdin(in io.Reader) (string, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read api key from stdin: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", errors.New("no api key provided on stdin")
	}
	return key, nil
}

func promptToken(in io.Reader) (string, error) {
	reader := bufio.NewReader(in)
	key, _ := reader.ReadString('\n')
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("empty api key provided")
	}
	return key, nil
}
