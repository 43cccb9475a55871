package main

import "flag"

// interactiveArgs 是 TUI 入口的参数。
type interactiveArgs struct {
	cfgPath          string
	modelOverride    string
	providerOverride string
	chapterID        string
	terminal         bool
	markdownStyle    string
	configOverrides  stringSlice
}

func newInteractiveFlagSet(name string) (*flag.FlagSet, *interactiveArgs) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	args := &interactiveArgs{}

	fs.StringVar(&args.cfgPath, "config", "", "Path to config file (default ~/.gitmaster/config.toml)")
	fs.StringVar(&args.modelOverride, "model", "", "Model override")
	fs.StringVar(&args.modelOverride, "m", "", "Alias for --model")
	fs.StringVar(&args.providerOverride, "provider", "", "Assistant provider (gemini|openai|anthropic|echo)")
	fs.StringVar(&args.chapterID, "chapter", "", "Chapter id to open first")
	fs.BoolVar(&args.terminal, "terminal", false, "Start in the practice terminal")
	fs.StringVar(&args.markdownStyle, "markdown-style", "", "Glamour style name or path (default: detect from terminal)")
	fs.Var(&args.configOverrides, "c", "Override config value key=value (repeatable)")

	return fs, args
}
