package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/santiagomed/politica/policy"
)

var ErrEmptyCompletion = errors.New("model returned no text")

// GeneratePolicy builds the prompt for req and makes exactly one completion call.
// Every failure, including an empty answer, is returned as a *GenerationError.
func GeneratePolicy(ctx context.Context, client LlmClient, req *policy.Request) (string, error) {
	prompt := BuildPolicyPrompt(req)

	completion, err := client.GetCompletion(ctx, prompt)
	if err != nil {
		return "", &GenerationError{Model: client.ModelName(), Err: err}
	}
	if completion == nil || strings.TrimSpace(completion.Text) == "" {
		return "", &GenerationError{Model: client.ModelName(), Err: ErrEmptyCompletion}
	}

	return completion.Text, nil
}
