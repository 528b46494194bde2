// Package coach writes the "message from your future self" that accompanies
// an evaluation. It prefers an LLM and falls back to a deterministic message
// built from the metrics whenever the model cannot deliver.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/llm"
)

// Source records who wrote a message.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// maxWords bounds the message length requested from the model and enforced on
// its reply.
const maxWords = 80

// FutureMessage is a short second-person note from the projected self.
type FutureMessage struct {
	Year   int    `json:"year"`
	Text   string `json:"message"`
	Focus  string `json:"focus,omitempty"`
	Source Source `json:"source"`
}

type Service interface {
	FutureMessage(ctx context.Context, habits domain.HabitSnapshot, metrics domain.OutcomeMetrics) (*FutureMessage, error)
}

type service struct {
	client llm.LLMClient
}

// NewService returns a coach backed by client. A nil client, or one that
// reports itself unavailable, yields the deterministic message.
func NewService(client llm.LLMClient) Service {
	return &service{client: client}
}

type llmReply struct {
	Message string `json:"message"`
	Focus   string `json:"focus"`
}

func (s *service) FutureMessage(ctx context.Context, habits domain.HabitSnapshot, metrics domain.OutcomeMetrics) (*FutureMessage, error) {
	if s.client == nil {
		return DeterministicMessage(habits, metrics), nil
	}

	if !s.client.Available(ctx) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return DeterministicMessage(habits, metrics), nil
	}

	prompt, err := userPrompt(habits, metrics)
	if err != nil {
		return DeterministicMessage(habits, metrics), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskFutureMessage,
		SystemPrompt: systemPrompt(metrics.FinalYear().Year),
		UserPrompt:   prompt,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return DeterministicMessage(habits, metrics), nil
	}

	reply, err := llm.ExtractJSON(resp.Text, func(r llmReply) error {
		if strings.TrimSpace(r.Message) == "" {
			return fmt.Errorf("message is empty")
		}
		return nil
	})
	if err != nil {
		// Models sometimes ignore the JSON instruction; plain prose is still usable.
		reply = llmReply{Message: resp.Text}
	}

	text := truncateWords(strings.TrimSpace(reply.Message), maxWords)
	if text == "" {
		return DeterministicMessage(habits, metrics), nil
	}
	return &FutureMessage{
		Year:   metrics.FinalYear().Year,
		Text:   text,
		Focus:  strings.TrimSpace(reply.Focus),
		Source: SourceLLM,
	}, nil
}

func systemPrompt(year int) string {
	return fmt.Sprintf(`You are the user's future self, writing from the year %d.
Speak in the second person to your past self. Be warm, specific and honest about the trajectory.
Use at most %d words. Reply with JSON only: {"message": "...", "focus": "one habit to change"}`, year, maxWords)
}

func userPrompt(habits domain.HabitSnapshot, metrics domain.OutcomeMetrics) (string, error) {
	payload := struct {
		Habits  domain.HabitSnapshot  `json:"habits"`
		Metrics domain.OutcomeMetrics `json:"metrics"`
	}{habits, metrics}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return "My current habits and projected outcomes:\n\n" + string(data), nil
}

func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "..."
}
