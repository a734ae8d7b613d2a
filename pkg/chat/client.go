// Package chat wraps the Anthropic API for dataset Q&A. The core pipeline
// never depends on it; a failed call surfaces as an error string in the
// presentation layer.
package chat

import (
	"context"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Client answers free-text questions against a system context.
type Client interface {
	Ask(ctx context.Context, system, question string) (string, error)
}

type sdkClient struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

// Option configures the client.
type Option func(*sdkClient)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *sdkClient) { c.model = model }
}

// WithMaxTokens overrides the default response token cap.
func WithMaxTokens(n int64) Option {
	return func(c *sdkClient) { c.maxTokens = n }
}

// NewClient creates a chat client backed by the Anthropic SDK.
func NewClient(apiKey string, opts ...Option) Client {
	c := &sdkClient{
		client:    sdk.NewClient(option.WithAPIKey(apiKey)),
		model:     "claude-haiku-4-5-20251001",
		maxTokens: 1024,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *sdkClient) Ask(ctx context.Context, system, question string) (string, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(question)),
		},
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", eris.Wrap(err, "chat: create message")
	}

	var answer string
	for _, block := range msg.Content {
		if block.Type == "text" {
			answer += block.Text
		}
	}

	zap.L().Debug("chat: answered",
		zap.String("model", string(msg.Model)),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return answer, nil
}
