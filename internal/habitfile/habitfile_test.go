package habitfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/futureself/internal/domain"
)

func TestParse_Full(t *testing.T) {
	s, err := Parse(strings.NewReader(`
name: exam week
sleepHours: 6
studyHours: 25
screenTime: 3
exerciseDays: 1
stressLevel: 8
`))
	require.NoError(t, err)
	assert.Equal(t, "exam week", s.Name)
	assert.Equal(t, domain.HabitSnapshot{SleepHours: 6, StudyHours: 25, ScreenTime: 3, ExerciseDays: 1, StressLevel: 8}, s.HabitSnapshot)
}

func TestParse_PartialUsesDefaults(t *testing.T) {
	s, err := Parse(strings.NewReader("sleepHours: 9\n"))
	require.NoError(t, err)

	want := domain.DefaultHabits()
	want.SleepHours = 9
	assert.Equal(t, want, s.HabitSnapshot)
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHabits(), s.HabitSnapshot)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key": "sleep: 8\n",
		"wrong type":  "sleepHours: lots\n",
		"nan":         "stressLevel: .nan\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_NamesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekend.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exerciseDays: 2\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "weekend", s.Name)
	assert.Equal(t, 2.0, s.ExerciseDays)
}

func TestWriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.yaml")
	in := Scenario{Name: "ideal", HabitSnapshot: domain.HabitSnapshot{SleepHours: 10, StudyHours: 30, ExerciseDays: 7, StressLevel: 1}}

	require.NoError(t, Write(path, in))
	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
