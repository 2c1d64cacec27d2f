package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"onebot-ads/internal/config/configs"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("empty model response")

// Generator implements port.TextGenerator with the Gemini API.
type Generator struct {
	client      *genai.Client
	model       string
	timeout     time.Duration
	temperature float32
}

// New creates a Generator from cfg.
func New(ctx context.Context, cfg configs.LLM) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LLM_API_KEY is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Generator{
		client:      client,
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		temperature: cfg.Temperature,
	}, nil
}

// Generate asks the model to complete prompt with at most maxTokens output
// tokens. The configured timeout applies when ctx has no deadline.
func (g *Generator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if _, ok := ctx.Deadline(); !ok && g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	conf := &genai.GenerateContentConfig{MaxOutputTokens: int32(maxTokens)}
	if g.temperature > 0 {
		conf.Temperature = genai.Ptr(g.temperature)
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), conf)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", g.model, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
