package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"google.golang.org/genai"
)

const (
	retryBaseDelay = 200 * time.Millisecond
	retryMaxDelay  = 5 * time.Second
)

// GenerateRequest holds the parameters for a generation call.
type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses the configured default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// geminiClient implements LLMClient using the Gemini API.
type geminiClient struct {
	cfg      LLMConfig
	observer Observer
	getenv   func(string) string

	client *genai.Client
	key    string
}

// NewGeminiClient creates an LLMClient backed by Gemini. The credential is
// read from the environment when Generate is called.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{cfg: cfg, observer: observer, getenv: os.Getenv}
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	if !c.cfg.Enabled {
		err := fmt.Errorf("%w: disabled by configuration", ErrProviderUnavailable)
		c.report(start, 0, err)
		return nil, err
	}
	client, err := c.ensureClient(ctx)
	if err != nil {
		c.report(start, 0, err)
		return nil, err
	}

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	genCfg := c.contentConfig(req)

	var lastErr error
	attempts := 0
	text, _ := failsafe.Get(func() (string, error) {
		attempts++
		text, err := c.doRequest(ctx, client, req.UserPrompt, genCfg)
		lastErr = err
		return text, err
	}, c.retryPolicy(ctx))

	if lastErr == nil {
		latency := time.Since(start).Milliseconds()
		c.observer.OnCallComplete(LLMCallEvent{
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Attempts:  attempts,
			Success:   true,
		})
		return &GenerateResponse{Text: text, Model: c.cfg.Model, LatencyMs: latency}, nil
	}

	if ctx.Err() != nil {
		lastErr = fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	}
	c.report(start, attempts, lastErr)
	return nil, lastErr
}

// retryPolicy retries failed calls up to MaxRetries times. Calls are not
// retried once ctx is done.
func (c *geminiClient) retryPolicy(ctx context.Context) retrypolicy.RetryPolicy[string] {
	return retrypolicy.Builder[string]().
		HandleIf(func(_ string, err error) bool {
			return err != nil && ctx.Err() == nil
		}).
		WithBackoff(retryBaseDelay, retryMaxDelay).
		WithMaxRetries(c.cfg.MaxRetries).
		Build()
}

func (c *geminiClient) ensureClient(ctx context.Context) (*genai.Client, error) {
	key := strings.TrimSpace(c.getenv(c.cfg.APIKeyEnv))
	if key == "" {
		return nil, fmt.Errorf("%w: missing %s environment variable", ErrProviderUnavailable, c.cfg.APIKeyEnv)
	}
	if c.client != nil && c.key == key {
		return c.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      key,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.cfg.Endpoint},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating gemini client: %v", ErrProviderUnavailable, err)
	}
	c.client = client
	c.key = key
	return client, nil
}

func (c *geminiClient) contentConfig(req GenerateRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = req.Temperature
	}
	if temp != nil {
		cfg.Temperature = genai.Ptr(float32(*temp))
	}
	if c.cfg.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(c.cfg.MaxTokens)
	}
	return cfg
}

func (c *geminiClient) doRequest(ctx context.Context, client *genai.Client, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *geminiClient) report(start time.Time, attempts int, err error) {
	c.observer.OnCallComplete(LLMCallEvent{
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  attempts,
		Success:   false,
		ErrorCode: errorCode(err),
	})
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY"
	case errors.Is(err, ErrRequestFailed):
		return "REQUEST_FAILED"
	default:
		return "UNKNOWN"
	}
}
