package main

import (
	"os"

	"gitmaster/internal/assistant"
	"gitmaster/internal/content"
	"gitmaster/internal/features"
	"gitmaster/internal/logger"
	"gitmaster/internal/prompts"
	"gitmaster/internal/simulator"
	"gitmaster/internal/tui"
)

var log = logger.Named("cli")

func main() {
	logger.Configure()
	if logFile, _, err := logger.SetupFile(logger.DefaultLogPath); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}
	if entry, llmCloser, _, err := logger.SetupComponentFile("llm", logger.DefaultLLMLogPath); err != nil {
		log.Warnf("failed to initialize llm log (%s): %v", logger.DefaultLLMLogPath, err)
	} else {
		logger.SetGlobalLLMLogger(logger.NewLLMLogger(entry))
		defer llmCloser.Close()
	}

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "sim":
			simMain(rest[1:])
			return
		case "ask":
			askMain(root, rest[1:])
			return
		case "chapters":
			chaptersMain(root, rest[1:])
			return
		case "ping":
			pingMain(root, rest[1:])
			return
		case "features":
			featuresMain(root, rest[1:])
			return
		case "login":
			loginMain(root, rest[1:])
			return
		case "logout":
			logoutMain(root, rest[1:])
			return
		case "completion":
			completionMain(rest[1:])
			return
		}
	}

	runInteractive(root, rest)
}

func runInteractive(root rootArgs, args []string) {
	fs, cli := newInteractiveFlagSet("gitmaster")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse args: %v", err)
	}
	cli.configOverrides = stringSlice(prependOverrides(root.overrides, []string(cli.configOverrides)))

	cfg, err := loadSettings(cli.cfgPath, cli.configOverrides, cli.providerOverride, cli.modelOverride)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.LogLevel != "" {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			log.Warnf("ignore log_level: %v", err)
		}
	}
	set := features.Resolve(cfg.Features)
	log.Debugf("features enabled: %v", set.On())

	feed, err := content.LoadOrBuiltin(cfg.ChaptersFile)
	if err != nil {
		log.Fatalf("failed to load chapters: %v", err)
	}
	sim := simulator.New(simulator.DefaultTable(), simulator.Options{StrictCommit: set.Enabled(features.StrictCommit)})

	var relay *assistant.Relay
	if set.Enabled(features.Assistant) {
		conv, err := buildConversation(cfg, prompts.SystemInstruction())
		if err != nil {
			log.Fatalf("failed to init assistant: %v", err)
		}
		relay = assistant.NewRelay(assistant.RelayOptions{
			Conversation: conv,
			Timeout:      cfg.RequestTimeout(),
		})
		log.Infof("assistant ready provider=%s conversation=%s", cfg.Provider, relay.ID())
	}

	res, err := tui.Run(tui.Options{
		Feed:            feed,
		Simulator:       sim,
		Relay:           relay,
		Features:        set,
		ChapterID:       cli.chapterID,
		StartInTerminal: cli.terminal,
		MarkdownStyle:   cli.markdownStyle,
	})
	if err != nil {
		log.Fatalf("tui exited: %v", err)
	}
	log.Infof("session ended chapter=%s view=%s commands=%d assistant_turns=%d",
		res.ChapterID, res.View, res.CommandsRun, res.AssistantTurns)
}

