package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AdviceTimeout bounds every external completion call.
const AdviceTimeout = 30 * time.Second

// AdviceProviderInterface is the port to an external conversational
// completion API. Implementations return the raw response text; any
// transport, HTTP or decode failure surfaces as an error the caller is
// expected to degrade on, never crash on.
type AdviceProviderInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error)
}

// NewAdviceProvider selects a provider implementation by name.
func NewAdviceProvider(provider, apiKey, model string) (AdviceProviderInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIAdviceProvider(apiKey, model), nil
	case "gemini":
		return NewGeminiAdviceProvider(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported advice provider: %s", provider)
	}
}
