package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		assert.Equal(t, "gemini-test", r.Header.Get("x-goog-api-key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "contents")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGeminiClient(t *testing.T, baseURL string) *GeminiClient {
	client, err := NewGeminiClient(context.Background(), &LlmConfig{
		APIKey:    "gemini-test",
		ModelName: "gemini-2.5-flash",
		BaseURL:   baseURL,
	})
	require.NoError(t, err)
	return client
}

func TestGeminiClientGetCompletion(t *testing.T) {
	srv := newGeminiServer(t, http.StatusOK, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "Política de Trocas"}]}, "finishReason": "STOP"}],
		"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15}
	}`)

	client := newTestGeminiClient(t, srv.URL)
	completion, err := client.GetCompletion(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Política de Trocas", completion.Text)
	assert.Equal(t, 12, completion.PromptTokens)
	assert.Equal(t, 3, completion.CompletionTokens)
	assert.Equal(t, "gemini-2.5-flash", client.ModelName())
}

func TestGeminiClientAPIError(t *testing.T) {
	srv := newGeminiServer(t, http.StatusBadRequest, `{
		"error": {"code": 400, "message": "API key not valid. Please pass a valid API key.", "status": "INVALID_ARGUMENT"}
	}`)

	client := newTestGeminiClient(t, srv.URL)
	_, err := client.GetCompletion(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini generation failed")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiBlankCandidateIsEmptyCompletion(t *testing.T) {
	srv := newGeminiServer(t, http.StatusOK, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "  \n "}]}, "finishReason": "STOP"}]
	}`)

	client := newTestGeminiClient(t, srv.URL)
	_, err := GeneratePolicy(context.Background(), client, sampleRequest())

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "gemini-2.5-flash", genErr.Model)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
