package llm

import (
	"context"
	"fmt"

	"github.com/santiagomed/politica/logger"
	tellm "github.com/santiagomed/tellm/sdk"
)

// TellmClient forwards every successful completion to a tellm server.
// Logging failures never fail the completion.
type TellmClient struct {
	next        LlmClient
	batchID     string
	tellmClient *tellm.Client
	logger      logger.Logger
}

func NewTellmClient(next LlmClient, tellmURL, batchID string, l logger.Logger) *TellmClient {
	return &TellmClient{
		next:        next,
		batchID:     EnsureBatchID(batchID),
		tellmClient: tellm.NewClient(tellmURL),
		logger:      l,
	}
}

func (t *TellmClient) ModelName() string {
	return t.next.ModelName()
}

func (t *TellmClient) GetCompletion(ctx context.Context, prompt string) (*Completion, error) {
	res, err := t.next.GetCompletion(ctx, prompt)
	if err != nil {
		return nil, err
	}

	err = t.tellmClient.Log(t.batchID, prompt, res.Text, t.next.ModelName(), res.PromptTokens, res.CompletionTokens)
	if err != nil {
		t.logger.WithField("warning", err).Warn(fmt.Sprintf("failed to log to tellm batch %s", t.batchID))
	}

	return res, nil
}
