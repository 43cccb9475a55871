package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides. Malformed
// entries are reported and skipped; valid ones still apply.
func ApplyKVOverrides(cfg Config, overrides []string) (Config, error) {
	var bad []string
	for _, raw := range overrides {
		key, val, ok := strings.Cut(raw, "=")
		if !ok {
			bad = append(bad, raw)
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "provider":
			cfg.Provider = NormalizeProvider(val)
		case "model":
			cfg.Model = val
		case "api_key":
			cfg.APIKey = val
		case "base_url":
			cfg.BaseURL = val
		case "chapters_file":
			cfg.ChaptersFile = val
		case "log_level":
			cfg.LogLevel = val
		case "request_timeout_seconds":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				bad = append(bad, raw)
				continue
			}
			cfg.RequestTimeoutSeconds = n
		default:
			name, isFeature := strings.CutPrefix(key, "features.")
			if !isFeature || name == "" {
				bad = append(bad, raw)
				continue
			}
			on, err := strconv.ParseBool(val)
			if err != nil {
				bad = append(bad, raw)
				continue
			}
			if cfg.Features == nil {
				cfg.Features = make(map[string]bool)
			}
			cfg.Features[name] = on
		}
	}
	if len(bad) > 0 {
		return cfg, fmt.Errorf("invalid overrides: %s", strings.Join(bad, ", "))
	}
	return cfg, nil
}
