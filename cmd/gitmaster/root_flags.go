package main

import (
	"flag"
	"fmt"
	"strings"

	"gitmaster/internal/features"
)

type rootArgs struct {
	overrides []string
}

var rootFlagNames = map[string]bool{"c": true, "enable": true, "disable": true}

// splitRootArgs 取出子命令之前的 -c/--enable/--disable，其余参数保持原顺序。
// 遇到第一个非 flag 参数或 "--" 即停止。
func splitRootArgs(args []string) (own []string, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") || arg == "-" {
			return own, append(rest, args[i:]...)
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !rootFlagNames[name] {
			rest = append(rest, arg)
			continue
		}
		own = append(own, arg)
		if !hasValue && i+1 < len(args) {
			i++
			own = append(own, args[i])
		}
	}
	return own, rest
}

// parseRootArgs 解析子命令之前的全局参数，剩余参数原样返回。
func parseRootArgs(args []string) (rootArgs, []string, error) {
	own, rest := splitRootArgs(args)
	fs := flag.NewFlagSet("gitmaster", flag.ContinueOnError)
	var overrides stringSlice
	var enable stringSlice
	var disable stringSlice
	fs.Var(&overrides, "c", "Override config value key=value (repeatable, applied before subcommand overrides)")
	fs.Var(&enable, "enable", "Enable a feature (repeatable). Equivalent to -c features.<name>=true")
	fs.Var(&disable, "disable", "Disable a feature (repeatable). Equivalent to -c features.<name>=false")
	if err := fs.Parse(own); err != nil {
		return rootArgs{}, nil, err
	}

	featureOverrides, err := buildFeatureOverrides(enable, disable)
	if err != nil {
		return rootArgs{}, nil, err
	}
	all := append([]string{}, overrides...)
	all = append(all, featureOverrides...)
	return rootArgs{overrides: all}, rest, nil
}

func prependOverrides(root []string, overrides []string) []string {
	merged := append([]string{}, root...)
	return append(merged, overrides...)
}

func buildFeatureOverrides(enable []string, disable []string) ([]string, error) {
	var overrides []string
	for _, group := range []struct {
		keys  []string
		value bool
	}{{enable, true}, {disable, false}} {
		for _, key := range group.keys {
			if !features.IsKnown(key) {
				return nil, fmt.Errorf("unknown feature flag: %s", key)
			}
			overrides = append(overrides, fmt.Sprintf("features.%s=%t", key, group.value))
		}
	}
	return overrides, nil
}
