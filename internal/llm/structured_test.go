package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMessage struct {
	Message string `json:"message"`
	Focus   string `json:"focus"`
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		focus string
	}{
		{"clean", `{"message":"Keep going.","focus":"sleep"}`, "sleep"},
		{"fenced", "```json\n{\"message\":\"Hi\",\"focus\":\"exercise\"}\n```", "exercise"},
		{"surrounding text", "Here you go:\n{\"message\":\"Hi\",\"focus\":\"stress\"}\nEnjoy!", "stress"},
		{"braces in string", `{"message":"use {curly} braces","focus":"study"}`, "study"},
		{"comments", "{\n// greeting\n\"message\":\"Hi\", /* note */ \"focus\":\"screen\"}", "screen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON[testMessage](tt.raw, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.focus, got.Focus)
		})
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testMessage]("You will be fine.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testMessage](`{"message": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Validation(t *testing.T) {
	nonEmpty := func(m testMessage) error {
		if m.Message == "" {
			return fmt.Errorf("message is empty")
		}
		return nil
	}

	_, err := ExtractJSON(`{"message":"","focus":"sleep"}`, nonEmpty)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")

	got, err := ExtractJSON(`{"message":"ok"}`, nonEmpty)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Message)
}
