package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLLM is a mock implementation of the LLM client
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) GetCompletion(ctx context.Context, prompt string) (*Completion, error) {
	args := m.Called(ctx, prompt)
	c, _ := args.Get(0).(*Completion)
	return c, args.Error(1)
}

func (m *MockLLM) ModelName() string {
	return "test-model"
}

func TestGeneratePolicy(t *testing.T) {
	req := sampleRequest()
	mockLLM := new(MockLLM)
	mockLLM.On("GetCompletion", mock.Anything, BuildPolicyPrompt(req)).
		Return(&Completion{Text: "POLÍTICA DE TROCAS"}, nil).Once()

	text, err := GeneratePolicy(context.Background(), mockLLM, req)
	require.NoError(t, err)
	assert.Equal(t, "POLÍTICA DE TROCAS", text)
	mockLLM.AssertExpectations(t)
}

func TestGeneratePolicyErrors(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name       string
		completion *Completion
		err        error
		wantCause  error
	}{
		{"transport error", nil, cause, cause},
		{"empty text", &Completion{Text: ""}, nil, ErrEmptyCompletion},
		{"whitespace text", &Completion{Text: " \n\t"}, nil, ErrEmptyCompletion},
		{"nil completion", nil, nil, ErrEmptyCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLLM := new(MockLLM)
			mockLLM.On("GetCompletion", mock.Anything, mock.AnythingOfType("string")).
				Return(tt.completion, tt.err).Once()

			text, err := GeneratePolicy(context.Background(), mockLLM, sampleRequest())
			assert.Empty(t, text)

			var genErr *GenerationError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, "test-model", genErr.Model)
			assert.ErrorIs(t, err, tt.wantCause)
			mockLLM.AssertNumberOfCalls(t, "GetCompletion", 1)
		})
	}
}

func TestEnsureBatchID(t *testing.T) {
	id := EnsureBatchID("")
	assert.Len(t, id, 24)
	assert.Equal(t, id, EnsureBatchID(id))
	assert.NotEqual(t, "not-hex-not-hex-not-hex!", EnsureBatchID("not-hex-not-hex-not-hex!"))
}
