package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kardolus/reasoning-cli/api"
	"github.com/kardolus/reasoning-cli/config"
	"go.uber.org/zap"
)

const (
	ContentType              = "application/json"
	HeaderContentType        = "Content-Type"
	HeaderUserAgent          = "User-Agent"
	HeaderClientRequestID    = "X-Client-Request-Id"
	errFailedToRead          = "failed to read response: %w"
	errFailedToCreateRequest = "failed to create request: %w"
	errFailedToMakeRequest   = "failed to make request: %w"
	errHTTP                  = "http status %d: %s"
	errHTTPStatus            = "http status: %d"
)

//go:generate mockgen -destination=../client/callermocks_test.go -package=client_test github.com/kardolus/reasoning-cli/api/http Caller
type Caller interface {
	Post(ctx context.Context, url string, body []byte) ([]byte, error)
}

type RestCaller struct {
	client *http.Client
	config config.Config
}

// Ensure RestCaller implements Caller interface
var _ Caller = &RestCaller{}

func New(cfg config.Config) *RestCaller {
	client := &http.Client{}
	if cfg.SkipTLSVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	if cfg.Timeout > 0 {
		client.Timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return &RestCaller{
		client: client,
		config: cfg,
	}
}

type CallerFactory func(cfg config.Config) Caller

func RealCallerFactory(cfg config.Config) Caller {
	return New(cfg)
}

// Post sends body to url and returns the response body. Statuses outside the
// 2xx range are returned as errors carrying the upstream message when the
// body is an OpenAI error envelope.
func (r *RestCaller) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := r.newRequest(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf(errFailedToCreateRequest, err)
	}

	zap.S().Debugf("request %s: POST %s", req.Header.Get(HeaderClientRequestID), url)

	response, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(errFailedToMakeRequest, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		errorResponse, err := io.ReadAll(response.Body)
		if err != nil {
			return nil, fmt.Errorf(errHTTPStatus, response.StatusCode)
		}

		var errorData api.ErrorResponse
		if err := json.Unmarshal(errorResponse, &errorData); err != nil || errorData.Error.Message == "" {
			return nil, fmt.Errorf(errHTTPStatus, response.StatusCode)
		}

		return errorResponse, fmt.Errorf(errHTTP, response.StatusCode, errorData.Error.Message)
	}

	result, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf(errFailedToRead, err)
	}

	return result, nil
}

func (r *RestCaller) newRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	if r.config.APIKey != "" {
		req.Header.Set(r.config.AuthHeader, r.config.AuthTokenPrefix+r.config.APIKey)
	}
	req.Header.Set(HeaderContentType, ContentType)
	if r.config.UserAgent != "" {
		req.Header.Set(HeaderUserAgent, r.config.UserAgent)
	}
	for k, v := range r.config.CustomHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set(HeaderClientRequestID, uuid.NewString())

	return req, nil
}
