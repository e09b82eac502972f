package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// EnvAPIKey is the environment variable consulted when no API key is
// passed to New.
const EnvAPIKey = "GOOGLE_GEMINI_API_KEY"

// ModelCaller is the slice of the genai SDK the Client depends on.
// *genai.Models satisfies it.
type ModelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client wraps the Gemini API. It is not safe for concurrent use; the
// transcript is plain per-instance state.
type Client struct {
	models  ModelCaller
	model   string
	history []Turn
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-pro.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client]. When apiKey is empty the
// GOOGLE_GEMINI_API_KEY environment variable is used; if neither is set
// New fails, so a missing credential is fatal at construction rather
// than on first call.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key not provided and %s is not set", EnvAPIKey)
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		models: gc.Models,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Model returns the model ID the client sends requests to.
func (c *Client) Model() string { return c.model }

// SamplingParams control generation randomness. Nil pointer fields and
// a zero MaxTokens fall back to the package defaults (0.7 / 2048 / 0.9
// / 40); explicit zero pointer values are forwarded, so deterministic
// sampling (Temperature 0) stays expressible. genai.Ptr builds the
// pointers.
type SamplingParams struct {
	Temperature *float32
	MaxTokens   int32
	TopP        *float32
	TopK        *float32
}

// GenerateText forwards a single prompt with sampling configuration to
// the provider and returns the generated text. Provider errors are
// returned unchanged apart from package context.
func (c *Client) GenerateText(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), buildConfig(params))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}

func buildConfig(p SamplingParams) *genai.GenerateContentConfig {
	if p.Temperature == nil {
		p.Temperature = genai.Ptr[float32](defaultTemperature)
	}
	if p.MaxTokens == 0 {
		p.MaxTokens = defaultMaxTokens
	}
	if p.TopP == nil {
		p.TopP = genai.Ptr[float32](defaultTopP)
	}
	if p.TopK == nil {
		p.TopK = genai.Ptr[float32](defaultTopK)
	}
	return &genai.GenerateContentConfig{
		Temperature:     p.Temperature,
		MaxOutputTokens: p.MaxTokens,
		TopP:            p.TopP,
		TopK:            p.TopK,
	}
}
