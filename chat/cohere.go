package chat

import (
	"context"

	co "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/kardolus/reasoning-cli/config"
	"github.com/pkg/errors"
)

type chatFunc func(ctx context.Context, req *co.ChatRequest) (string, error)

type CohereProvider struct {
	chat  chatFunc
	model string
}

var _ Provider = (*CohereProvider)(nil)

func NewCohereProvider(cfg config.Config) *CohereProvider {
	client := cohereclient.NewClient(cohereclient.WithToken(cfg.APIKey))

	return &CohereProvider{
		chat: func(ctx context.Context, req *co.ChatRequest) (string, error) {
			res, err := client.Chat(ctx, req)
			if err != nil {
				return "", err
			}
			return res.Text, nil
		},
		model: modelFor(cfg),
	}
}

func (p *CohereProvider) Answer(ctx context.Context, prompt string) (string, error) {
	req := &co.ChatRequest{Message: prompt}
	if p.model != "" {
		model := p.model
		req.Model = &model
	}

	text, err := p.chat(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "cohere chat failed")
	}

	return text, nil
}
