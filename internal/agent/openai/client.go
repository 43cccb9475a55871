package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitmaster/internal/agent"
	"gitmaster/internal/logger"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// DefaultModel 是未配置模型时使用的 OpenAI 模型。
const DefaultModel = "gpt-4o-mini"

const providerName = "openai"

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	System  string
}

// Client 通过 Chat Completions 流式接口实现 agent.Conversation。
// Chat Completions 无服务端会话，历史由客户端维护。
type Client struct {
	api     *openai.Client
	model   string
	system  string
	history agent.History
}

// 确保 Client 实现了 agent.Conversation 接口
var _ agent.Conversation = (*Client)(nil)

// New 构造客户端。空 API key 不在这里报错，请求时由服务端拒绝。
func New(opts Options) *Client {
	cfg := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(opts.APIKey)),
		option.WithMaxRetries(0),
	}
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		cfg = append(cfg, option.WithBaseURL(strings.TrimRight(normalizeBaseURL(base), "/")))
	}
	client := openai.NewClient(cfg...)

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:    &client,
		model:  model,
		system: strings.TrimSpace(opts.System),
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Send(ctx context.Context, text string, onChunk func(string)) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return agent.ErrEmptyMessage
	}
	logger.LLMLog.Request(providerName, c.model, text)

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: toChatMessages(c.system, c.history.Snapshot(text)),
	}
	stream := c.api.Chat.Completions.NewStreaming(ctx, params)
	defer stream.Close()

	var reply strings.Builder
	chunks := 0
	for stream.Next() {
		chunk := stream.Current()
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			logger.LLMLog.StreamChunk(providerName, choice.Delta.Content, chunks)
			chunks++
			reply.WriteString(choice.Delta.Content)
			onChunk(choice.Delta.Content)
		}
	}
	if err := stream.Err(); err != nil {
		err = wrapHTTPError(err)
		logger.LLMLog.Error(providerName, err)
		return err
	}
	c.history.Commit(text, reply.String())
	logger.LLMLog.StreamComplete(providerName, chunks)
	return nil
}

func toChatMessages(system string, msgs []agent.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs)+1)
	if system != "" {
		out = append(out, openai.SystemMessage(system))
	}
	for _, msg := range msgs {
		switch msg.Role {
		case agent.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case agent.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}

func wrapHTTPError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr != nil {
		raw := strings.TrimSpace(apiErr.RawJSON())
		if raw != "" {
			return fmt.Errorf("http_%d: %s", apiErr.StatusCode, raw)
		}
		return fmt.Errorf("http_%d: %v", apiErr.StatusCode, err)
	}
	return err
}
