package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiAdviceProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiAdviceProvider(apiKey, model string) (*GeminiAdviceProvider, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdviceProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiAdviceProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, AdviceTimeout)
	defer cancel()

	m := p.client.GenerativeModel(p.model)
	m.SetTemperature(temperature)
	m.SetMaxOutputTokens(int32(maxTokens))
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	text := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if text == "" {
		return "", fmt.Errorf("gemini: empty response text")
	}
	return text, nil
}

func (p *GeminiAdviceProvider) Close() error {
	return p.client.Close()
}
