package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/config"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-1.5-flash"

// ErrNoAPIKey indicates the Gemini client cannot be constructed
var ErrNoAPIKey = errors.New("gemini api key not configured")

// GeminiClient wraps the Gemini API behind the TextGenerator contract
// used by the analysis engine.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiClient creates a Gemini client. It fails when no API key is
// configured; callers treat that as "run without a model" rather than
// falling back to any baked-in credential.
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Generate sends a prompt and returns the model's raw text response
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errors.New("empty response from gemini")
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from gemini")
	}

	if c.logger != nil {
		c.logger.Debug("Received gemini response",
			zap.String("model", c.model),
			zap.Int("length", len(text)),
		)
	}
	return text, nil
}
