// Package service is the entry point the CLI talks to. It routes prompts to
// either the plain chat provider or the reasoning client.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/kardolus/reasoning-cli/api"
	"github.com/kardolus/reasoning-cli/api/response"
	"github.com/kardolus/reasoning-cli/chat"
	"go.uber.org/zap"
)

var ErrBlankPrompt = errors.New("prompt must not be blank")

//go:generate mockgen -destination=reasonermocks_test.go -package=service_test github.com/kardolus/reasoning-cli/service Reasoner
type Reasoner interface {
	SendReasoningRequest(ctx context.Context, prompt string, effort api.ReasoningEffort) (response.Response, error)
	SendForText(ctx context.Context, prompt string, effort api.ReasoningEffort) (string, error)
}

type Service struct {
	chat     chat.Provider
	reasoner Reasoner
}

func New(provider chat.Provider, reasoner Reasoner) *Service {
	return &Service{chat: provider, reasoner: reasoner}
}

func (s *Service) NormalAnswer(ctx context.Context, prompt string) (string, error) {
	if err := validate(prompt); err != nil {
		return "", err
	}
	return s.chat.Answer(ctx, prompt)
}

// ReasoningAnswer asks with medium effort.
func (s *Service) ReasoningAnswer(ctx context.Context, prompt string) (response.Response, error) {
	return s.ReasoningAnswerWithEffort(ctx, prompt, api.EffortMedium)
}

func (s *Service) ReasoningAnswerWithEffort(ctx context.Context, prompt string, effort api.ReasoningEffort) (response.Response, error) {
	if err := validate(prompt); err != nil {
		return nil, err
	}

	result, err := s.reasoner.SendReasoningRequest(ctx, prompt, effort)
	if err != nil {
		return nil, err
	}

	summary := Summarize(result)
	zap.S().Debugf("reasoning outcome: status=%s length=%d tokens=%d details=%s",
		summary.Status, summary.ContentLength, summary.TotalTokens, summary.Details)

	return result, nil
}

func (s *Service) TextAnswer(ctx context.Context, prompt string, effort api.ReasoningEffort) (string, error) {
	if err := validate(prompt); err != nil {
		return "", err
	}
	return s.reasoner.SendForText(ctx, prompt, effort)
}

// ExtractSafeContent returns the text a caller can show, logging what was
// lost when the outcome was not a full success.
func ExtractSafeContent(r response.Response) string {
	sugar := zap.S()

	switch v := r.(type) {
	case response.Success:
		sugar.Debugf("success: %d tokens used", v.TotalTokens())
		return v.Text
	case response.Error:
		sugar.Warnf("upstream error [%s]: %s", v.Code, v.Message)
		return ""
	case response.Partial:
		sugar.Warnf("partial response: %s", v.Reason)
		return v.AvailableText
	default:
		return ""
	}
}

func validate(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrBlankPrompt
	}
	return nil
}
