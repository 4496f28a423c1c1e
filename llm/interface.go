package llm

import "context"

// Completion is the text returned by a provider plus its token accounting.
type Completion struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

type LlmClient interface {
	GetCompletion(ctx context.Context, prompt string) (*Completion, error)
	ModelName() string
}
