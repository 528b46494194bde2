package simulation

import (
	"testing"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_Endpoints(t *testing.T) {
	worst := Normalize(domain.HabitSnapshot{SleepHours: 4, StudyHours: 0, ScreenTime: 10, ExerciseDays: 0, StressLevel: 10})
	assert.Equal(t, NormalizedHabits{Sleep: 0, Study: 0, Screen: 0, Exercise: 0, StressRaw: 1, Stress: 0}, worst)

	best := Normalize(domain.HabitSnapshot{SleepHours: 10, StudyHours: 25, ScreenTime: 0, ExerciseDays: 5, StressLevel: 1})
	assert.Equal(t, NormalizedHabits{Sleep: 1, Study: 1, Screen: 1, Exercise: 1, StressRaw: 0, Stress: 1}, best)
}

func TestNormalize_StudyAllowsOvershootTo1_1(t *testing.T) {
	assert.InDelta(t, 1.1, Normalize(domain.HabitSnapshot{StudyHours: 27.5}).Study, 1e-12)
	assert.InDelta(t, 1.1, Normalize(domain.HabitSnapshot{StudyHours: 30}).Study, 1e-12)
	assert.InDelta(t, 1.1, Normalize(domain.HabitSnapshot{StudyHours: 400}).Study, 1e-12)
}

func TestNormalize_ClampsOutOfRange(t *testing.T) {
	n := Normalize(domain.HabitSnapshot{SleepHours: 2, StudyHours: -5, ScreenTime: 15, ExerciseDays: 12, StressLevel: 5})
	assert.Equal(t, 0.0, n.Sleep)
	assert.Equal(t, 0.0, n.Study)
	assert.Equal(t, 0.0, n.Screen)
	assert.Equal(t, 1.0, n.Exercise)
}

func TestNormalize_StressRawIsNotClamped(t *testing.T) {
	n := Normalize(domain.HabitSnapshot{StressLevel: 19})
	assert.InDelta(t, 2.0, n.StressRaw, 1e-12)
	assert.InDelta(t, -1.0, n.Stress, 1e-12)
}

func TestNormalize_Linear(t *testing.T) {
	n := Normalize(domain.HabitSnapshot{SleepHours: 7, StudyHours: 10, ScreenTime: 4, ExerciseDays: 3, StressLevel: 5.5})
	assert.InDelta(t, 0.5, n.Sleep, 1e-12)
	assert.InDelta(t, 0.4, n.Study, 1e-12)
	assert.InDelta(t, 0.6, n.Screen, 1e-12)
	assert.InDelta(t, 0.6, n.Exercise, 1e-12)
	assert.InDelta(t, 0.5, n.StressRaw, 1e-12)
}
