package chat

import (
	"context"

	"github.com/kardolus/reasoning-cli/config"
	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client *openai.Client
	model  string
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider talks to the chat completions endpoint under cfg.ChatURL,
// or cfg.URL when no chat url is set.
func NewOpenAIProvider(cfg config.Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.ChatURL != "" {
		clientConfig.BaseURL = cfg.ChatURL
	} else if cfg.URL != "" {
		clientConfig.BaseURL = cfg.URL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  modelFor(cfg),
	}
}

func (p *OpenAIProvider) Answer(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "openai chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
