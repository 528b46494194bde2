package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/futureself/internal/domain"
)

// evaluationView is the --json shape of a single evaluation.
type evaluationView struct {
	Name     string                `json:"name,omitempty"`
	Habits   domain.HabitSnapshot  `json:"habits"`
	Metrics  domain.OutcomeMetrics `json:"metrics"`
	Warnings []string              `json:"warnings,omitempty"`
	RecordID string                `json:"recordId,omitempty"`
}

func newEvaluationView(h domain.HabitSnapshot, m domain.OutcomeMetrics) evaluationView {
	return evaluationView{Habits: h, Metrics: m, Warnings: h.Warnings()}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
