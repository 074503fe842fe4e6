// Package chat answers prompts through a plain chat completion, without
// reasoning controls.
package chat

import (
	"context"
	"fmt"

	"github.com/kardolus/reasoning-cli/config"
)

const (
	OpenAI = "openai"
	Cohere = "cohere"
)

//go:generate mockgen -destination=../service/providermocks_test.go -package=service_test github.com/kardolus/reasoning-cli/chat Provider
type Provider interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// New returns the provider named by cfg.ChatProvider.
func New(cfg config.Config) (Provider, error) {
	switch cfg.ChatProvider {
	case OpenAI, "":
		return NewOpenAIProvider(cfg), nil
	case Cohere:
		return NewCohereProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s", cfg.ChatProvider)
	}
}

func modelFor(cfg config.Config) string {
	if cfg.ChatModel != "" {
		return cfg.ChatModel
	}
	return cfg.Model
}
