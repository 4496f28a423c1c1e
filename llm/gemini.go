package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient sends prompts to the Gemini API through the GenAI SDK.
type GeminiClient struct {
	client *genai.Client
	config *LlmConfig
}

func NewGeminiClient(ctx context.Context, cfg *LlmConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{
		client: client,
		config: cfg,
	}, nil
}

func (g *GeminiClient) ModelName() string {
	return g.config.ModelName
}

func (g *GeminiClient) GetCompletion(ctx context.Context, prompt string) (*Completion, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.config.ModelName, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}
	if result == nil {
		return nil, errors.New("empty response from Gemini API")
	}

	completion := &Completion{Text: result.Text()}
	if usage := result.UsageMetadata; usage != nil {
		completion.PromptTokens = int(usage.PromptTokenCount)
		completion.CompletionTokens = int(usage.CandidatesTokenCount)
	}
	return completion, nil
}
