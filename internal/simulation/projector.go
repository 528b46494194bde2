package simulation

import "github.com/alexanderramin/futureself/internal/domain"

// ProjectionYears is the number of annual steps after the present year.
const ProjectionYears = 5

// trajectory carries the unrounded working values between annual steps.
// Only emitted points are rounded, so rounding error never compounds.
type trajectory struct {
	academic float64
	burnout  float64
	health   float64
}

// Project simulates the present scores forward, emitting one point per year
// from baseYear through baseYear+ProjectionYears. Habits are held constant.
func Project(h domain.HabitSnapshot, seed PresentScores, baseYear int) []domain.ProjectionPoint {
	cur := trajectory{
		academic: float64(seed.Academic),
		burnout:  float64(seed.Burnout),
		health:   float64(seed.Health),
	}

	points := make([]domain.ProjectionPoint, 0, ProjectionYears+1)
	for offset := 0; offset <= ProjectionYears; offset++ {
		points = append(points, cur.point(baseYear+offset))
		cur = cur.step(h)
	}
	return points
}

func (t trajectory) point(year int) domain.ProjectionPoint {
	return domain.ProjectionPoint{
		Year:     year,
		Academic: roundClamp(t.academic, 0, 100),
		Burnout:  roundClamp(t.burnout, 0, 100),
		Health:   roundClamp(t.health, 0, 100),
	}
}

// step applies one year of feedback: high burnout slows academic growth and
// speeds its decline; stress or short sleep compounds burnout; exercise recovers.
func (t trajectory) step(h domain.HabitSnapshot) trajectory {
	factor := burnoutFactor(t.burnout)

	if h.StudyHours > 5 && h.SleepHours > 6 {
		t.academic += 2 / factor
	} else {
		t.academic -= 3 * factor
	}

	switch {
	case h.StressLevel > 6 || h.SleepHours < 6:
		t.burnout += 2
	case h.ExerciseDays > 3:
		t.burnout--
	}

	if h.ExerciseDays < 2 || h.SleepHours < 6 {
		t.health -= 2
	} else {
		t.health++
	}

	t.academic = clamp(t.academic, 0, 100)
	t.burnout = clamp(t.burnout, 0, 100)
	t.health = clamp(t.health, 0, 100)
	return t
}

func burnoutFactor(burnout float64) float64 {
	switch {
	case burnout > 70:
		return 1.5
	case burnout > 50:
		return 1.1
	default:
		return 1.0
	}
}
