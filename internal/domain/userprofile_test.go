package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestNewUserStats(t *testing.T) {
	s := NewUserStats()
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, InitialStress, s.CurrentStress)
	assert.Equal(t, 100, s.NextLevelXP())
}

func TestApplyActivity_Study(t *testing.T) {
	s := NewUserStats()
	reward := s.ApplyActivity(ActivityStudy)

	assert.Equal(t, 50, reward.XPEarned)
	assert.False(t, reward.LeveledUp)
	assert.Equal(t, 1, reward.NewLevel)
	assert.Equal(t, 50, s.XP)
	assert.Equal(t, 1, s.TotalStudySessions)
	assert.Equal(t, 5, s.Intelligence)
	assert.Equal(t, 2, s.Discipline)
}

func TestApplyActivity_Workout(t *testing.T) {
	s := NewUserStats()
	s.ApplyActivity(ActivityWorkout)

	assert.Equal(t, 60, s.XP)
	assert.Equal(t, 1, s.TotalWorkouts)
	assert.Equal(t, 5, s.Strength)
	assert.Equal(t, 3, s.Vitality)
}

func TestApplyActivity_MeditateLowersStressToFloor(t *testing.T) {
	s := NewUserStats()
	for i := 0; i < 7; i++ {
		s.ApplyActivity(ActivityMeditate)
	}
	assert.Equal(t, 0, s.CurrentStress, "stress must not go below zero")
	assert.Equal(t, 7, s.TotalMeditations)
	assert.Equal(t, 35, s.Peace)
}

func TestApplyActivity_LevelUpCarriesSurplus(t *testing.T) {
	s := NewUserStats()
	s.ApplyActivity(ActivityWorkout) // 60
	reward := s.ApplyActivity(ActivityWorkout)

	assert.True(t, reward.LeveledUp)
	assert.Equal(t, 2, reward.NewLevel)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 20, s.XP, "120 XP minus the 100 XP threshold")
	assert.Equal(t, 200, s.NextLevelXP())
}

func TestApplyActivity_AtMostOneLevelPerActivity(t *testing.T) {
	s := UserStats{Level: 1, XP: 500}
	reward := s.ApplyActivity(ActivityStudy)

	assert.True(t, reward.LeveledUp)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 450, s.XP)
}

func TestApplyActivity_StatsCapAt100(t *testing.T) {
	s := UserStats{Level: 50, Intelligence: 98, Discipline: 99, Strength: 97, Vitality: 100, Peace: 96}
	s.ApplyActivity(ActivityStudy)
	s.ApplyActivity(ActivityWorkout)
	s.ApplyActivity(ActivityMeditate)

	assert.Equal(t, StatCap, s.Intelligence)
	assert.Equal(t, StatCap, s.Discipline)
	assert.Equal(t, StatCap, s.Strength)
	assert.Equal(t, StatCap, s.Vitality)
	assert.Equal(t, StatCap, s.Peace)
}

func TestParseActivityType(t *testing.T) {
	cases := []struct {
		in      string
		want    ActivityType
		wantErr bool
	}{
		{"study", ActivityStudy, false},
		{" Workout ", ActivityWorkout, false},
		{"MEDITATE", ActivityMeditate, false},
		{"nap", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseActivityType(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input=%q", tc.in)
			continue
		}
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestNewUserProfile(t *testing.T) {
	p, err := NewUserProfile("ada", "Ada", "Lovelace", 19, testNow)
	require.NoError(t, err)
	assert.Equal(t, "ada", p.Username)
	assert.Equal(t, NewUserStats(), p.Stats)
	assert.Equal(t, DefaultHabits(), p.Habits)
	assert.Equal(t, testNow, p.CreatedAt)
	assert.Equal(t, "Ada Lovelace", p.DisplayName())

	_, err = NewUserProfile("", "A", "B", 20, testNow)
	assert.Error(t, err)
	_, err = NewUserProfile("x", "", "", -1, testNow)
	assert.Error(t, err)
}

func TestDisplayName_FallsBackToUsername(t *testing.T) {
	p := &UserProfile{Username: "neo"}
	assert.Equal(t, "neo", p.DisplayName())
}

func TestSetStudyProfile(t *testing.T) {
	p := &UserProfile{}
	later := testNow.Add(time.Hour)
	require.NoError(t, p.SetStudyProfile(StudyRoleCollege, "Computer Science", later))
	assert.Equal(t, StudyRoleCollege, p.StudyRole)
	assert.Equal(t, "Computer Science", p.StudyDetail)
	assert.Equal(t, later, p.UpdatedAt)

	assert.Error(t, p.SetStudyProfile("Kindergarten", "", later))
}
