package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIAdviceProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIAdviceProvider(apiKey, model string) *OpenAIAdviceProvider {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIAdviceProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAIAdviceProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, AdviceTimeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai: empty response text")
	}
	return text, nil
}
