package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/internal/retry"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gpt-4o"

// Client wraps the OpenAI SDK to implement toolschema.ChatProvider.
type Client struct {
	client  *openai.Client
	model   string
	baseURL string
	http    *http.Client
	retry   retry.Config
	logger  *slog.Logger
}

var _ toolschema.ChatProvider = (*Client)(nil)

// New creates a new OpenAI client with the given API key.
// An empty key is reported as missing configuration.
func New(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, toolschema.NewConfigError("openai: API key is required")
	}

	c := &Client{
		model: DefaultModel,
		retry: retry.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	// internal/retry owns retries so every attempt is categorized the same way.
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if c.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(c.baseURL))
	}
	if c.http != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(c.http))
	}

	client := openai.NewClient(reqOpts...)
	c.client = &client
	return c, nil
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithModel sets the model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at another OpenAI-compatible endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" && !strings.HasSuffix(url, "/") {
			url += "/"
		}
		c.baseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRetry sets the retry policy for transient failures.
func WithRetry(cfg retry.Config) ClientOption {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithLogger sets the logger for request diagnostics (debug level).
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Model returns the model used for requests.
func (c *Client) Model() string { return c.model }

// Chat sends a conversation with the given tools and returns the reply.
func (c *Client) Chat(ctx context.Context, messages []toolschema.Message, tools []toolschema.Tool) (*toolschema.Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: convertMessages(messages),
	}
	converted, err := ConvertTools(tools)
	if err != nil {
		return nil, err
	}
	if len(converted) > 0 {
		params.Tools = converted
	}

	c.logger.DebugContext(ctx, "chat completion request",
		"model", c.model,
		"messages", len(params.Messages),
		"tools", len(params.Tools),
	)

	retryCfg := c.retry
	if retryCfg.Logger == nil {
		retryCfg.Logger = c.logger
	}
	resp, err := retry.Do(ctx, retryCfg, func() (*openai.ChatCompletion, error) {
		resp, err := c.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return nil, wrapError(err)
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	out := &toolschema.Response{
		Usage: toolschema.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		Raw: json.RawMessage(resp.RawJSON()),
	}
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		out.Content = choice.Message.Content
		out.FinishReason = string(choice.FinishReason)
		out.ToolCalls = extractToolCalls(choice.Message)
	}

	c.logger.DebugContext(ctx, "chat completion response",
		"finish_reason", out.FinishReason,
		"tool_calls", len(out.ToolCalls),
		"input_tokens", out.Usage.InputTokens,
		"output_tokens", out.Usage.OutputTokens,
	)
	return out, nil
}
