package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/futureself/internal/db"
	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/simulation"
	"github.com/google/uuid"
)

var testUsernameCounter atomic.Int64

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithName(first, last string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.FirstName = first
		p.LastName = last
	}
}

func WithAge(age int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Age = age
	}
}

func WithHabits(h domain.HabitSnapshot) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Habits = h
	}
}

func WithStats(s domain.UserStats) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Stats = s
	}
}

func WithStudyRole(role domain.StudyRole, detail string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.StudyRole = role
		p.StudyDetail = detail
	}
}

// NewTestProfile returns an unsaved profile. An empty username gets a unique
// generated one.
func NewTestProfile(username string, opts ...ProfileOption) *domain.UserProfile {
	if username == "" {
		username = fmt.Sprintf("user%03d", testUsernameCounter.Add(1))
	}
	now := time.Now().UTC()
	p := &domain.UserProfile{
		ID:        uuid.New().String(),
		Username:  username,
		Stats:     domain.NewUserStats(),
		Habits:    domain.DefaultHabits(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Activity options
type ActivityOption func(*domain.ActivityLog)

func WithDescription(d string) ActivityOption {
	return func(a *domain.ActivityLog) {
		a.Description = d
	}
}

func WithCompletedAt(t time.Time) ActivityOption {
	return func(a *domain.ActivityLog) {
		a.CompletedAt = t
	}
}

func NewTestActivity(profileID string, typ domain.ActivityType, opts ...ActivityOption) *domain.ActivityLog {
	a := &domain.ActivityLog{
		ID:          uuid.New().String(),
		ProfileID:   profileID,
		Type:        typ,
		XPEarned:    typ.XPReward(),
		CompletedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Evaluation options
type EvaluationOption func(*domain.EvaluationRecord)

func WithProfileID(id string) EvaluationOption {
	return func(e *domain.EvaluationRecord) {
		e.ProfileID = &id
	}
}

func WithEvaluatedAt(t time.Time) EvaluationOption {
	return func(e *domain.EvaluationRecord) {
		e.EvaluatedAt = t
	}
}

func WithMetrics(m domain.OutcomeMetrics) EvaluationOption {
	return func(e *domain.EvaluationRecord) {
		e.Metrics = m
	}
}

// NewTestEvaluation returns an unsaved record for the default habits.
func NewTestEvaluation(opts ...EvaluationOption) *domain.EvaluationRecord {
	e := &domain.EvaluationRecord{
		ID:          uuid.New().String(),
		Habits:      domain.DefaultHabits(),
		Metrics:     simulation.Evaluate(domain.DefaultHabits(), simulation.DefaultBaseYear),
		EvaluatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SeedProfile inserts a test profile directly and returns it.
func SeedProfile(t *testing.T, conn db.DBTX, username string, opts ...ProfileOption) *domain.UserProfile {
	t.Helper()
	p := NewTestProfile(username, opts...)
	_, err := conn.ExecContext(context.Background(),
		`INSERT INTO profiles (id, username, first_name, last_name, age, level, xp, current_stress,
			sleep_hours, study_hours, screen_time, exercise_days, stress_level, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Username, p.FirstName, p.LastName, p.Age, p.Stats.Level, p.Stats.XP, p.Stats.CurrentStress,
		p.Habits.SleepHours, p.Habits.StudyHours, p.Habits.ScreenTime, p.Habits.ExerciseDays, p.Habits.StressLevel,
		p.CreatedAt.Format(time.RFC3339Nano), p.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("seeding profile: %v", err)
	}
	return p
}
