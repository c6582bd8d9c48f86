package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4_1,
		modelName: "gpt-4.1",
	}
}

func (c *OpenAIClient) Name() string {
	return c.modelName
}

func (c *OpenAIClient) Respond(ctx context.Context, question, marketContext string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(marketContext)),
			openai.UserMessage(question),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
