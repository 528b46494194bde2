package llm

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver(t *testing.T) {
	logger, hook := test.NewNullLogger()
	obs := NewLogObserver(logger)

	obs.OnCallComplete(LLMCallEvent{Task: TaskFutureMessage, Provider: ProviderOllama, Model: "llama3.2", LatencyMs: 40, Success: true})
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "llm_call", entry.Message)
	assert.Equal(t, int64(40), entry.Data["latency_ms"])

	obs.OnCallComplete(LLMCallEvent{Task: TaskFutureMessage, Success: false, ErrorCode: "TIMEOUT"})
	entry = hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "TIMEOUT", entry.Data["error_code"])
}
