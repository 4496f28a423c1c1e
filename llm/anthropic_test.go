package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnthropicServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant-test", r.Header.Get("X-Api-Key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-sonnet-4-5", req["model"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestAnthropicClient(t *testing.T, baseURL string) *AnthropicClient {
	client, err := NewAnthropicClient(&LlmConfig{
		APIKey:    "sk-ant-test",
		ModelName: "claude-sonnet-4-5",
		BaseURL:   baseURL,
	})
	require.NoError(t, err)
	return client
}

func TestAnthropicClientGetCompletion(t *testing.T) {
	srv := newAnthropicServer(t, http.StatusOK, `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-5",
		"content": [{"type": "text", "text": "Política "}, {"type": "text", "text": "de Trocas"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 12, "output_tokens": 3}
	}`)

	client := newTestAnthropicClient(t, srv.URL)
	completion, err := client.GetCompletion(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Política de Trocas", completion.Text)
	assert.Equal(t, 12, completion.PromptTokens)
	assert.Equal(t, 3, completion.CompletionTokens)
}

func TestAnthropicClientUnauthorized(t *testing.T) {
	srv := newAnthropicServer(t, http.StatusUnauthorized, `{
		"type": "error",
		"error": {"type": "authentication_error", "message": "invalid x-api-key"}
	}`)

	client := newTestAnthropicClient(t, srv.URL)
	_, err := client.GetCompletion(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic API error")
	var apiErr *anthropic.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestAnthropicClientNoContent(t *testing.T) {
	srv := newAnthropicServer(t, http.StatusOK, `{
		"id": "msg_2",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-5",
		"content": [],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 12, "output_tokens": 0}
	}`)

	client := newTestAnthropicClient(t, srv.URL)
	_, err := GeneratePolicy(context.Background(), client, sampleRequest())

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.EqualError(t, genErr.Err, "no content returned from Anthropic")
}
