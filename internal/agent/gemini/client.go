package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gitmaster/internal/agent"
	"gitmaster/internal/logger"

	"google.golang.org/genai"
)

// DefaultModel 是未配置模型时使用的 Gemini 模型。
const DefaultModel = "gemini-2.5-flash"

const providerName = "gemini"

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	System  string
}

// Client 持有一个 Gemini 聊天会话。会话在第一次 Send 时创建，
// 之后的消息复用同一个 genai.Chat，历史由 SDK 维护。
// API key 不在构造时校验，缺失时错误会在第一次请求时出现。
type Client struct {
	opts Options

	mu   sync.Mutex
	chat *genai.Chat
}

var _ agent.Conversation = (*Client)(nil)

func New(opts Options) *Client {
	opts.Model = strings.TrimSpace(opts.Model)
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return &Client{opts: opts}
}

// Model 返回会话使用的模型名。
func (c *Client) Model() string {
	return c.opts.Model
}

func (c *Client) session(ctx context.Context) (*genai.Chat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.chat != nil {
		return c.chat, nil
	}
	cfg := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(c.opts.APIKey),
		Backend: genai.BackendGeminiAPI,
	}
	if base := strings.TrimRight(strings.TrimSpace(c.opts.BaseURL), "/"); base != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: base + "/"}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	var genCfg *genai.GenerateContentConfig
	if system := strings.TrimSpace(c.opts.System); system != "" {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
	}
	chat, err := client.Chats.Create(ctx, c.opts.Model, genCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("create gemini chat: %w", err)
	}
	c.chat = chat
	return chat, nil
}

func (c *Client) Send(ctx context.Context, text string, onChunk func(string)) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return agent.ErrEmptyMessage
	}
	logger.LLMLog.Request(providerName, c.opts.Model, text)

	chat, err := c.session(ctx)
	if err != nil {
		logger.LLMLog.Error(providerName, err)
		return err
	}

	chunks := 0
	for resp, err := range chat.SendMessageStream(ctx, genai.Part{Text: text}) {
		if err != nil {
			err = fmt.Errorf("gemini stream: %w", err)
			logger.LLMLog.Error(providerName, err)
			return err
		}
		if resp == nil {
			continue
		}
		if chunk := resp.Text(); chunk != "" {
			logger.LLMLog.StreamChunk(providerName, chunk, chunks)
			chunks++
			onChunk(chunk)
		}
	}
	logger.LLMLog.StreamComplete(providerName, chunks)
	return nil
}

// History 返回 SDK 记录的对话历史，尚未建立会话时为空。
func (c *Client) History() []*genai.Content {
	c.mu.Lock()
	chat := c.chat
	c.mu.Unlock()
	if chat == nil {
		return nil
	}
	return chat.History(false)
}
