package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// StatCap is the ceiling for every cumulative attribute.
	StatCap = 100
	// InitialStress is the stress meter of a fresh profile; meditation lowers it.
	InitialStress = 10
	// XPPerLevel scales the XP needed to leave a level: Level * XPPerLevel.
	XPPerLevel = 100
)

type StudyRole string

const (
	StudyRoleSchool  StudyRole = "School"
	StudyRoleCollege StudyRole = "College"
	StudyRoleJob     StudyRole = "Job"
)

// ValidStudyRoles is the canonical set of accepted study roles.
var ValidStudyRoles = map[StudyRole]bool{
	StudyRoleSchool: true, StudyRoleCollege: true, StudyRoleJob: true,
}

type UserStats struct {
	Level int
	XP    int

	Intelligence int
	Vitality     int
	Strength     int
	Discipline   int
	Peace        int

	TotalStudySessions int
	TotalWorkouts      int
	TotalMeditations   int

	CurrentStress int
}

// NewUserStats returns the stats of a freshly created profile.
func NewUserStats() UserStats {
	return UserStats{
		Level:         1,
		CurrentStress: InitialStress,
	}
}

// NextLevelXP is the XP threshold for leaving the current level.
func (s UserStats) NextLevelXP() int {
	return s.Level * XPPerLevel
}

// ApplyActivity credits one completed activity. At most one level is gained per
// call; surplus XP carries over into the new level.
func (s *UserStats) ApplyActivity(t ActivityType) ActivityReward {
	gain := t.XPReward()
	reward := ActivityReward{XPEarned: gain}

	s.XP += gain
	if threshold := s.NextLevelXP(); s.XP >= threshold {
		s.Level++
		s.XP -= threshold
		reward.LeveledUp = true
	}
	reward.NewLevel = s.Level

	switch t {
	case ActivityStudy:
		s.TotalStudySessions++
		s.Intelligence = min(StatCap, s.Intelligence+5)
		s.Discipline = min(StatCap, s.Discipline+2)
	case ActivityWorkout:
		s.TotalWorkouts++
		s.Strength = min(StatCap, s.Strength+5)
		s.Vitality = min(StatCap, s.Vitality+3)
	case ActivityMeditate:
		s.TotalMeditations++
		s.Peace = min(StatCap, s.Peace+5)
		s.CurrentStress = max(0, s.CurrentStress-2)
	}
	return reward
}

type UserProfile struct {
	ID          string
	Username    string
	FirstName   string
	LastName    string
	Age         int
	StudyRole   StudyRole
	StudyDetail string
	Stats       UserStats
	Habits      HabitSnapshot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUserProfile builds a profile with starting stats and default habits.
// The caller assigns the ID.
func NewUserProfile(username, firstName, lastName string, age int, now time.Time) (*UserProfile, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if age < 0 {
		return nil, fmt.Errorf("age must be non-negative, got %d", age)
	}
	return &UserProfile{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Stats:     NewUserStats(),
		Habits:    DefaultHabits(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DisplayName prefers the full name and falls back to the username.
func (p *UserProfile) DisplayName() string {
	return CoalesceStr(strings.TrimSpace(p.FirstName+" "+p.LastName), p.Username)
}

// SetStudyProfile records what the user studies for; role must be valid when set.
func (p *UserProfile) SetStudyProfile(role StudyRole, detail string, now time.Time) error {
	if role != "" && !ValidStudyRoles[role] {
		return fmt.Errorf("invalid study role %q", role)
	}
	p.StudyRole = role
	p.StudyDetail = detail
	p.UpdatedAt = now
	return nil
}
