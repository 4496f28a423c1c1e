package llm

import (
	"context"
	"fmt"

	"github.com/santiagomed/politica/config"
	"github.com/santiagomed/politica/logger"
)

type LlmConfig struct {
	APIKey    string
	ModelName string
	BaseURL   string
	BatchID   string
	TellmURL  string
}

// NewClient builds the client for the configured provider, wrapped with tellm
// logging when a tellm URL is set.
func NewClient(ctx context.Context, cfg *config.Config, l logger.Logger) (LlmClient, error) {
	llmCfg := &LlmConfig{
		APIKey:    cfg.APIKey,
		ModelName: cfg.ModelName,
		BatchID:   EnsureBatchID(""),
		TellmURL:  cfg.TellmURL,
	}

	var (
		client LlmClient
		err    error
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err = NewGeminiClient(ctx, llmCfg)
	case config.ProviderOpenAI:
		client, err = NewOpenAIClient(llmCfg)
	case config.ProviderAnthropic:
		client, err = NewAnthropicClient(llmCfg)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	l.Info(fmt.Sprintf("Using %s model %s", cfg.Provider, cfg.ModelName))
	if llmCfg.TellmURL != "" {
		l.Debug(fmt.Sprintf("Logging completions to tellm at %s with batch %s", llmCfg.TellmURL, llmCfg.BatchID))
		client = NewTellmClient(client, llmCfg.TellmURL, llmCfg.BatchID, l)
	}
	return client, nil
}
