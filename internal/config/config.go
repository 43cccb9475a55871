package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderEcho      = "echo"
)

// Config is the persisted config file schema.
type Config struct {
	Provider              string          `toml:"provider"`
	Model                 string          `toml:"model,omitempty"`
	APIKey                string          `toml:"api_key,omitempty"`
	BaseURL               string          `toml:"base_url,omitempty"`
	RequestTimeoutSeconds int             `toml:"request_timeout_seconds,omitempty"`
	ChaptersFile          string          `toml:"chapters_file,omitempty"`
	LogLevel              string          `toml:"log_level,omitempty"`
	Features              map[string]bool `toml:"features,omitempty"`
	Source                string          `toml:"-"`
}

func Default() Config {
	return Config{Provider: ProviderGemini}
}

// RequestTimeout 返回单次助手请求的超时；0 表示不限制。
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return "", errors.New("config path is empty and $HOME is not set")
	}
	return path, nil
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gitmaster", "config.toml")
}

// Load reads path (or DefaultPath) and applies environment overrides.
// A missing file is not an error. The API key is never validated here.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg), nil
}

// LoadFile reads only the file, without environment overrides. Callers that
// write the config back use it so env values are not persisted.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	path, err := resolvePath(path)
	if err != nil {
		return cfg, err
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.Provider = NormalizeProvider(cfg.Provider)
	return cfg, nil
}

// NormalizeProvider lowercases p and maps blank to the default provider.
func NormalizeProvider(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if p == "" {
		return ProviderGemini
	}
	return p
}

// envKeys lists, per provider, the variables consulted for the key and base
// URL. Earlier entries win.
var envKeys = map[string]struct {
	apiKey  []string
	baseURL []string
}{
	ProviderGemini:    {apiKey: []string{"API_KEY", "GEMINI_API_KEY"}, baseURL: []string{"GEMINI_BASE_URL"}},
	ProviderOpenAI:    {apiKey: []string{"OPENAI_API_KEY"}, baseURL: []string{"OPENAI_BASE_URL"}},
	ProviderAnthropic: {apiKey: []string{"ANTHROPIC_AUTH_TOKEN", "ANTHROPIC_API_KEY"}, baseURL: []string{"ANTHROPIC_BASE_URL"}},
}

// ApplyEnv overrides the key and base URL from the environment variables of
// cfg.Provider.
func ApplyEnv(cfg Config) Config {
	keys, ok := envKeys[cfg.Provider]
	if !ok {
		return cfg
	}
	if v := firstEnv(keys.apiKey); v != "" {
		cfg.APIKey = v
	}
	if v := firstEnv(keys.baseURL); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}

func firstEnv(names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
