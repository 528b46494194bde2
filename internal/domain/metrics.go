package domain

import "time"

// Impact names the single habit change with the highest priority.
type Impact string

const (
	ImpactIncreaseSleep  Impact = "Increase Sleep"
	ImpactMoreExercise   Impact = "More Exercise"
	ImpactReduceStress   Impact = "Reduce Stress"
	ImpactReduceScreen   Impact = "Reduce Screen Time"
	ImpactIncreaseStudy  Impact = "Increase Study Time"
	ImpactBalanceStudy   Impact = "Balance Study/Rest"
	ImpactMaintainHabits Impact = "Maintain Habits"
)

// ValidImpacts is the closed set of impact labels.
var ValidImpacts = map[Impact]bool{
	ImpactIncreaseSleep:  true,
	ImpactMoreExercise:   true,
	ImpactReduceStress:   true,
	ImpactReduceScreen:   true,
	ImpactIncreaseStudy:  true,
	ImpactBalanceStudy:   true,
	ImpactMaintainHabits: true,
}

// ProjectionPoint is one year of the projected trajectory.
type ProjectionPoint struct {
	Year     int `json:"year"`
	Academic int `json:"academic"`
	Burnout  int `json:"burnout"`
	Health   int `json:"health"`
}

// OutcomeMetrics is the full result of evaluating a HabitSnapshot.
type OutcomeMetrics struct {
	AcademicScore int               `json:"academicScore"`
	BurnoutRisk   int               `json:"burnoutRisk"`
	HealthScore   int               `json:"healthScore"`
	Projection    []ProjectionPoint `json:"projection"`
	BiggestImpact Impact            `json:"biggestImpact"`
}

// FinalYear returns the last projected point, or the zero value when empty.
func (m OutcomeMetrics) FinalYear() ProjectionPoint {
	if len(m.Projection) == 0 {
		return ProjectionPoint{}
	}
	return m.Projection[len(m.Projection)-1]
}

// EvaluationRecord is a persisted evaluation, optionally tied to a profile.
type EvaluationRecord struct {
	ID          string         `json:"id"`
	ProfileID   *string        `json:"profileId,omitempty"`
	Habits      HabitSnapshot  `json:"habits"`
	Metrics     OutcomeMetrics `json:"metrics"`
	EvaluatedAt time.Time      `json:"evaluatedAt"`
}
