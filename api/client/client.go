package client

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kardolus/reasoning-cli/api"
	"github.com/kardolus/reasoning-cli/api/http"
	"github.com/kardolus/reasoning-cli/api/response"
	"github.com/kardolus/reasoning-cli/config"
	"go.uber.org/zap"
)

var errEmptyResponse = errors.New("empty response")

type Client struct {
	Config config.Config
	caller http.Caller
}

func New(callerFactory http.CallerFactory, cfg config.Config) *Client {
	return &Client{
		Config: cfg,
		caller: callerFactory(cfg),
	}
}

func (c *Client) WithServiceURL(url string) *Client {
	c.Config.URL = url
	return c
}

// SendReasoningRequest sends prompt as a single user message and normalizes
// the reply. A returned error is always a *ClientError.
func (c *Client) SendReasoningRequest(ctx context.Context, prompt string, effort api.ReasoningEffort) (response.Response, error) {
	return c.Send(ctx, []api.Message{{Role: api.UserRole, Content: prompt}}, effort)
}

// Send issues one POST to the responses endpoint with the given conversation.
func (c *Client) Send(ctx context.Context, messages []api.Message, effort api.ReasoningEffort) (response.Response, error) {
	body, err := c.createBody(messages, effort)
	if err != nil {
		return nil, newClientError(err)
	}

	endpoint := c.getEndpoint(c.Config.ResponsesPath)
	c.printRequestDebugInfo(endpoint, body)

	raw, err := c.caller.Post(ctx, endpoint, body)
	if err != nil {
		return nil, newClientError(err)
	}
	if len(raw) == 0 {
		return nil, newClientError(errEmptyResponse)
	}

	c.printResponseDebugInfo(raw)

	result, err := response.Parse(raw)
	if err != nil {
		return nil, newClientError(err)
	}

	return result, nil
}

// SendForText returns the answer text of a reasoning request. Partial results
// yield whatever text was available and upstream errors yield "".
func (c *Client) SendForText(ctx context.Context, prompt string, effort api.ReasoningEffort) (string, error) {
	result, err := c.SendReasoningRequest(ctx, prompt, effort)
	if err != nil {
		return "", err
	}

	if e, ok := result.(response.Error); ok {
		zap.S().Debugf("upstream error [%s]: %s", e.Code, e.Message)
	}

	return response.TextContent(result), nil
}

func (c *Client) createBody(messages []api.Message, effort api.ReasoningEffort) ([]byte, error) {
	req := api.ResponsesRequest{
		Model:     c.Config.Model,
		Input:     messages,
		Reasoning: api.Reasoning{Effort: effort},
	}
	if c.Config.MaxOutputTokens > 0 {
		req.MaxOutputTokens = c.Config.MaxOutputTokens
	}

	return json.Marshal(req)
}

func (c *Client) getEndpoint(path string) string {
	return c.Config.URL + path
}
