package chat

import (
	"context"

	co "github.com/cohere-ai/cohere-go/v2"
)

// NewCohereProviderWithChat swaps the SDK call for tests.
func NewCohereProviderWithChat(model string, fn func(ctx context.Context, req *co.ChatRequest) (string, error)) *CohereProvider {
	return &CohereProvider{chat: fn, model: model}
}
