package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string, opts ...option.RequestOption) *AnthropicClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) Name() string {
	return c.modelName
}

func (c *AnthropicClient) Respond(ctx context.Context, question, marketContext string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   1024,
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(marketContext)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(question)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("no response from anthropic")
}
