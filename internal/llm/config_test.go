package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledOllama(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskFutureMessage))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FUTURESELF_LLM_ENABLED", "true")
	t.Setenv("FUTURESELF_LLM_PROVIDER", "Gemini")
	t.Setenv("FUTURESELF_LLM_MODEL", "gemini-2.5-pro")
	t.Setenv("FUTURESELF_LLM_TIMEOUT_MS", "9000")
	t.Setenv("FUTURESELF_LLM_MESSAGE_TIMEOUT_MS", "20000")
	t.Setenv("FUTURESELF_LLM_MAX_RETRIES", "3")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskFutureMessage))
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_InvalidOverridesIgnored(t *testing.T) {
	t.Setenv("FUTURESELF_LLM_MESSAGE_TIMEOUT_MS", "not-a-number")
	t.Setenv("FUTURESELF_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 15000, cfg.TaskTimeout(TaskFutureMessage))
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks = nil
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskFutureMessage))
}

func TestAPIKey_FromNamedEnv(t *testing.T) {
	t.Setenv("MY_GEMINI_KEY", "secret")
	cfg := DefaultConfig()
	cfg.APIKeyEnv = "MY_GEMINI_KEY"
	assert.Equal(t, "secret", cfg.APIKey())
}
