package simulation

import (
	"math"

	"github.com/alexanderramin/futureself/internal/domain"
)

// Present-day score bounds. Burnout is inverse-sense: higher is worse.
const (
	academicFloor = 10
	academicCeil  = 100
	burnoutFloor  = 5
	burnoutCeil   = 98
	healthFloor   = 10
	healthCeil    = 100
)

// PresentScores are the three rounded, clamped present-day outcome scores.
type PresentScores struct {
	Academic int
	Burnout  int
	Health   int
}

// Synthesize combines normalized scores (plus raw habits for threshold checks)
// into the present-day scores. Each score is rounded once, then clamped.
func Synthesize(h domain.HabitSnapshot, n NormalizedHabits) PresentScores {
	return PresentScores{
		Academic: roundClamp(academicRaw(h, n), academicFloor, academicCeil),
		Burnout:  roundClamp(burnoutRaw(h, n), burnoutFloor, burnoutCeil),
		Health:   roundClamp(healthRaw(n), healthFloor, healthCeil),
	}
}

func academicRaw(h domain.HabitSnapshot, n NormalizedHabits) float64 {
	academic := 30.0
	academic += n.Study * 40
	academic += n.Sleep * 20
	academic += n.Screen * 5
	academic += n.Stress * 5
	if h.SleepHours < 5 {
		academic -= 10
	}
	return academic
}

func burnoutRaw(h domain.HabitSnapshot, n NormalizedHabits) float64 {
	burnout := 20.0
	burnout += n.StressRaw * 40
	if h.StudyHours > 20 {
		burnout += (h.StudyHours - 20) / 10 * 15
	}
	burnout += (1 - n.Screen) * 15
	burnout -= n.Sleep * 20
	burnout -= n.Exercise * 15
	return burnout
}

func healthRaw(n NormalizedHabits) float64 {
	health := 20.0
	health += n.Sleep * 35
	health += n.Exercise * 30
	health += n.Stress * 10
	health += n.Screen * 5
	return health
}

// roundClamp rounds half away from zero, then clamps to [lo, hi].
func roundClamp(v float64, lo, hi int) int {
	return int(clamp(math.Round(v), float64(lo), float64(hi)))
}
