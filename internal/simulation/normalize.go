package simulation

import (
	"math"

	"github.com/alexanderramin/futureself/internal/domain"
)

// NormalizedHabits holds each habit mapped onto a "goodness" scale.
// Everything lies in [0,1] except Study (up to 1.1) and StressRaw, which is
// deliberately left unclamped for the burnout formula.
type NormalizedHabits struct {
	Sleep     float64
	Study     float64
	Screen    float64
	Exercise  float64
	StressRaw float64
	Stress    float64
}

const studyCeiling = 1.1

// Normalize maps raw habits onto normalized scores using fixed ideal ranges.
func Normalize(h domain.HabitSnapshot) NormalizedHabits {
	stressRaw := (h.StressLevel - 1) / 9
	return NormalizedHabits{
		Sleep:     clamp((h.SleepHours-4)/6, 0, 1),
		Study:     clamp(h.StudyHours/25, 0, studyCeiling),
		Screen:    clamp(1-h.ScreenTime/10, 0, 1),
		Exercise:  clamp(h.ExerciseDays/5, 0, 1),
		StressRaw: stressRaw,
		Stress:    1 - stressRaw,
	}
}

// clamp bounds v to [lo, hi]. NaN, which only arises from non-finite input,
// collapses to lo so every output stays bounded.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return min(max(v, lo), hi)
}
