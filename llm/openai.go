package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient sends prompts to the OpenAI chat completions API.
type OpenAIClient struct {
	openAIClient *openai.Client
	config       *LlmConfig
}

// NewOpenAIClient creates a new OpenAI-backed client
func NewOpenAIClient(cfg *LlmConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		openAIClient: openai.NewClientWithConfig(clientConfig),
		config:       cfg,
	}, nil
}

func (c *OpenAIClient) ModelName() string {
	return c.config.ModelName
}

// GetCompletion sends a request to the OpenAI API and returns the generated text
func (c *OpenAIClient) GetCompletion(ctx context.Context, prompt string) (*Completion, error) {
	resp, err := c.openAIClient.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.config.ModelName,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)

	e := &openai.APIError{}
	if errors.As(err, &e) {
		switch e.HTTPStatusCode {
		case 401:
			return nil, fmt.Errorf("unauthorized: invalid OpenAI API key")
		case 429:
			return nil, fmt.Errorf("rate limited by OpenAI API")
		case 500:
			return nil, fmt.Errorf("OpenAI server error")
		default:
			return nil, fmt.Errorf("OpenAI API error: %w", e)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from OpenAI")
	}

	return &Completion{
		Text:             resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}
