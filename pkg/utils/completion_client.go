package utils

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is the vendor's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	DefaultModel   = "qwen-plus"
)

// CompletionConfig is read once at startup and never mutated afterwards.
type CompletionConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// CompletionOptions tune a single completion call. The plan path uses a long
// per-attempt timeout; the budget path a short one.
type CompletionOptions struct {
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type CompletionClientInterface interface {
	// Complete sends one chat completion request and returns the text of the
	// first choice. Transient network failures are retried internally;
	// every other failure is returned immediately as an *UpstreamError,
	// or ErrMissingConfig when no API key is configured.
	Complete(ctx context.Context, system, user string, opts CompletionOptions) (string, error)
}

// CompletionClient speaks the OpenAI-compatible chat-completions contract.
// All fields are set at construction, so one client serves concurrent
// invocations.
type CompletionClient struct {
	api        *openai.Client
	model      string
	configured bool

	// Retry governs transient failures only. Exposed so tests can collapse
	// the backoff delays.
	Retry RetryPolicy
}

func NewCompletionClient(cfg CompletionConfig) *CompletionClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &CompletionClient{
		api:        openai.NewClientWithConfig(clientCfg),
		model:      cfg.Model,
		configured: cfg.APIKey != "",
		Retry:      DefaultRetryPolicy(),
	}
}

func (c *CompletionClient) Complete(ctx context.Context, system, user string, opts CompletionOptions) (string, error) {
	if !c.configured {
		return "", ErrMissingConfig
	}

	logger := LoggerFromContext(ctx)

	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	attempt := 0
	var content string
	err := c.Retry.Do(ctx, IsTransient, func(ctx context.Context) error {
		attempt++

		attemptCtx := ctx
		if opts.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
			defer cancel()
		}

		resp, err := c.api.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: opts.Temperature,
			MaxTokens:   opts.MaxTokens,
		})
		if err != nil {
			classified := classifyCompletionError(err)
			var ue *UpstreamError
			if errors.As(classified, &ue) {
				logger.Warn("completion attempt failed",
					"attempt", attempt,
					"kind", ue.Kind.String(),
					"status", ue.Status,
					"model", c.model)
			}
			return classified
		}

		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return &UpstreamError{
				Kind:    UpstreamContract,
				Message: "response carries no completion choices",
			}
		}

		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		if IsTransient(err) {
			// Retries ran out; report it as a timeout so callers need not
			// distinguish the individual transient flavors.
			return "", &UpstreamError{
				Kind:    UpstreamTimeout,
				Message: "completion endpoint unreachable after retries: " + err.Error(),
			}
		}
		return "", err
	}
	return content, nil
}

// classifyCompletionError maps the library's error surface onto the upstream
// taxonomy. HTTP statuses carry the vendor's message through; anything that
// looks like a transport problem is marked transient.
func classifyCompletionError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, reqErr.Error())
	}

	if isNetworkError(err) {
		return &UpstreamError{Kind: UpstreamTransient, Message: err.Error()}
	}

	return &UpstreamError{Kind: UpstreamFailed, Message: err.Error()}
}

func classifyStatus(status int, message string) error {
	kind := UpstreamFailed
	switch status {
	case 401:
		kind = UpstreamCredential
	case 403:
		kind = UpstreamAccessDenied
	case 429:
		kind = UpstreamRateLimited
	case 400:
		kind = UpstreamBadRequest
	case 404:
		kind = UpstreamNotFound
	}
	return &UpstreamError{Kind: kind, Status: status, Message: message}
}

func isNetworkError(err error) bool {
	// Caller-driven cancellation must not be retried.
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
