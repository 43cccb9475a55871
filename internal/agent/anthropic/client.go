package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitmaster/internal/agent"
	"gitmaster/internal/logger"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultModel 是未配置模型时使用的 Claude 模型。
const DefaultModel = "claude-3-5-haiku-latest"

const (
	providerName = "anthropic"
	maxTokens    = 1024
)

type Options struct {
	Token   string
	BaseURL string
	Model   string
	System  string
}

type Client struct {
	api     *anthropic.Client
	model   string
	system  string
	history agent.History
}

var _ agent.Conversation = (*Client)(nil)

// New 构造客户端。token 为空时不报错，首次请求会因鉴权失败返回错误。
func New(opts Options) *Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(opts.Token)),
		option.WithMaxRetries(0),
	}
	if base := normalizeBaseURL(opts.BaseURL); base != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(base))
	}
	client := anthropic.NewClient(reqOpts...)

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

// SDK 自行拼接 /v1，配置里带上的 /v1 需要去掉。
func normalizeBaseURL(raw string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	base = strings.TrimSuffix(base, "/v1")
	return strings.TrimRight(base, "/")
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

	params := buildMessageParams(c.system, c.history.Snapshot(text), anthropic.Model(c.model))
	stream := c.api.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	var reply strings.Builder
	chunks := 0
	for stream.Next() {
		delta, ok := stream.Current().AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		td, ok := delta.Delta.AsAny().(anthropic.TextDelta)
		if !ok || td.Text == "" {
			continue
		}
		logger.LLMLog.StreamChunk(providerName, td.Text, chunks)
		chunks++
		reply.WriteString(td.Text)
		onChunk(td.Text)
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

func buildMessageParams(system string, msgs []agent.Message, model anthropic.Model) anthropic.MessageNewParams {
	var blocks []anthropic.TextBlockParam
	if system != "" {
		blocks = append(blocks, anthropic.TextBlockParam{Text: system})
	}
	messages := make([]anthropic.MessageParam, 0, len(msgs))
	for _, msg := range msgs {
		text := strings.TrimSpace(msg.Content)
		if text == "" {
			continue
		}
		switch msg.Role {
		case agent.RoleSystem:
			blocks = append(blocks, anthropic.TextBlockParam{Text: text})
		case agent.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(text)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: maxTokens,
		Messages:  messages,
	}
	if len(blocks) > 0 {
		params.System = blocks
	}
	return params
}

func wrapHTTPError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return fmt.Errorf("http_%d: %s", apiErr.StatusCode, strings.TrimSpace(apiErr.RawJSON()))
	}
	return err
}
