package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFiniteHabit is returned when a habit field is NaN or infinite.
var ErrNonFiniteHabit = errors.New("habit value must be a finite number")

// HabitSnapshot is the five-field habit input to the simulation engine.
// Values outside the nominal ranges are accepted; the engine clamps its outputs.
type HabitSnapshot struct {
	SleepHours   float64 `json:"sleepHours" yaml:"sleepHours"`     // 4-10 per night
	StudyHours   float64 `json:"studyHours" yaml:"studyHours"`     // 0-30 per week
	ScreenTime   float64 `json:"screenTime" yaml:"screenTime"`     // 0-10 per day
	ExerciseDays float64 `json:"exerciseDays" yaml:"exerciseDays"` // 0-7 per week
	StressLevel  float64 `json:"stressLevel" yaml:"stressLevel"`   // 1-10
}

// HabitRange is the nominal domain of a single habit field.
type HabitRange struct {
	Field string
	Min   float64
	Max   float64
	Unit  string
}

// HabitRanges lists the nominal domain of every habit field in display order.
var HabitRanges = []HabitRange{
	{Field: "sleepHours", Min: 4, Max: 10, Unit: "h"},
	{Field: "studyHours", Min: 0, Max: 30, Unit: "h"},
	{Field: "screenTime", Min: 0, Max: 10, Unit: "h"},
	{Field: "exerciseDays", Min: 0, Max: 7, Unit: "d"},
	{Field: "stressLevel", Min: 1, Max: 10, Unit: ""},
}

// DefaultHabits returns the starting habit state for a new user.
func DefaultHabits() HabitSnapshot {
	return HabitSnapshot{
		SleepHours:   7,
		StudyHours:   10,
		ScreenTime:   4,
		ExerciseDays: 3,
		StressLevel:  5,
	}
}

// Values returns the habit fields in the same order as HabitRanges.
func (h HabitSnapshot) Values() []float64 {
	return []float64{h.SleepHours, h.StudyHours, h.ScreenTime, h.ExerciseDays, h.StressLevel}
}

// Validate rejects snapshots the engine cannot meaningfully evaluate.
// Out-of-range but finite values pass; see Warnings.
func (h HabitSnapshot) Validate() error {
	for i, v := range h.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %w", HabitRanges[i].Field, ErrNonFiniteHabit)
		}
	}
	return nil
}

// Warnings lists fields that fall outside their nominal range.
func (h HabitSnapshot) Warnings() []string {
	var warnings []string
	for i, v := range h.Values() {
		r := HabitRanges[i]
		if v < r.Min || v > r.Max {
			warnings = append(warnings, fmt.Sprintf("%s=%g is outside the usual range [%g, %g]", r.Field, v, r.Min, r.Max))
		}
	}
	return warnings
}
