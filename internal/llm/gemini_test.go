package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiTestConfig(t *testing.T, endpoint string) LLMConfig {
	t.Helper()
	t.Setenv("FUTURESELF_TEST_GEMINI_KEY", "test-key")
	cfg := testConfig(endpoint)
	cfg.Provider = ProviderGemini
	cfg.APIKeyEnv = "FUTURESELF_TEST_GEMINI_KEY"
	cfg.MaxRetries = 0
	return cfg
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderGemini
	cfg.APIKeyEnv = "FUTURESELF_TEST_UNSET_KEY"

	_, err := NewClient(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
		assert.Contains(t, r.URL.Path, DefaultGeminiModel)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "systemInstruction")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  Future you says hi.  "}]}}]}`))
	}))
	defer srv.Close()

	var captured LLMCallEvent
	client, err := NewClient(context.Background(), geminiTestConfig(t, srv.URL), &captureObserver{fn: func(e LLMCallEvent) { captured = e }})
	require.NoError(t, err)
	assert.True(t, client.Available(context.Background()))

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskFutureMessage,
		SystemPrompt: "You are the user's future self.",
		UserPrompt:   "habits...",
	})
	require.NoError(t, err)
	assert.Equal(t, "Future you says hi.", resp.Text)
	assert.Equal(t, ProviderGemini, captured.Provider)
	assert.True(t, captured.Success)
}

func TestGeminiClient_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client, err := NewClient(context.Background(), geminiTestConfig(t, srv.URL), nil)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskFutureMessage, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
