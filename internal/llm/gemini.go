package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"golang.org/x/time/rate"
)

// Generation defaults, tuned for warm but bounded conversational replies.
const (
	defaultModel       = "gemini-2.0-flash-001"
	defaultTemperature = 0.7
	defaultTopK        = 40
	defaultTopP        = 0.95
	defaultMaxTokens   = 1024

	defaultRateLimit = 2.0 // requests per second
	defaultBurst     = 4
)

// Config configures the Gemini backend.
type Config struct {
	// APIKey authenticates against the Google AI API. Required.
	APIKey string `koanf:"api_key"`

	// Model overrides the default generation model.
	Model string `koanf:"model"`

	// Temperature overrides the default sampling temperature.
	Temperature float64 `koanf:"temperature"`

	// MaxTokens overrides the default completion length cap.
	MaxTokens int `koanf:"max_tokens"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// geminiClient implements Client over the Google AI API. Safety filtering
// blocks medium-and-above harm categories, which matters for a
// mental-wellness surface.
type geminiClient struct {
	model       *googleai.GoogleAI
	limiter     *rate.Limiter
	temperature float64
	maxTokens   int
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(modelName),
		googleai.WithHarmThreshold(googleai.HarmBlockMediumAndAbove),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		model:       model,
		limiter:     rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Complete generates a completion for the prompt, respecting the client
// rate limit and context cancellation.
func (g *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(g.temperature),
		llms.WithTopK(defaultTopK),
		llms.WithTopP(defaultTopP),
		llms.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if response == "" {
		return "", ErrEmptyResponse
	}
	return response, nil
}

var _ Client = (*geminiClient)(nil)
