// Package simulation turns a habit snapshot into present-day outcome scores,
// a five-year projection and the single habit change with the biggest impact.
//
// Every function here is pure and deterministic: no I/O, no shared state.
// An Engine may be used from any number of goroutines.
package simulation

import "github.com/alexanderramin/futureself/internal/domain"

// DefaultBaseYear labels the first projection point when none is configured.
const DefaultBaseYear = 2024

// Engine evaluates habit snapshots. The zero value uses DefaultBaseYear.
type Engine struct {
	BaseYear int
}

// NewEngine returns an Engine whose projection starts at baseYear.
// A non-positive baseYear selects DefaultBaseYear.
func NewEngine(baseYear int) Engine {
	if baseYear <= 0 {
		baseYear = DefaultBaseYear
	}
	return Engine{BaseYear: baseYear}
}

// Evaluate recomputes the full metrics for h. It never fails and never blocks.
func (e Engine) Evaluate(h domain.HabitSnapshot) domain.OutcomeMetrics {
	baseYear := e.BaseYear
	if baseYear <= 0 {
		baseYear = DefaultBaseYear
	}
	return Evaluate(h, baseYear)
}

// Evaluate is the free-function form of Engine.Evaluate.
func Evaluate(h domain.HabitSnapshot, baseYear int) domain.OutcomeMetrics {
	present := Synthesize(h, Normalize(h))
	return domain.OutcomeMetrics{
		AcademicScore: present.Academic,
		BurnoutRisk:   present.Burnout,
		HealthScore:   present.Health,
		Projection:    Project(h, present, baseYear),
		BiggestImpact: RankImpact(h),
	}
}
