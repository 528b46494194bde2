package service

import (
	"context"
	"time"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/repository"
)

type SimulationService interface {
	// Evaluate validates habits and runs the engine. Nothing is persisted.
	Evaluate(ctx context.Context, habits domain.HabitSnapshot) (*domain.OutcomeMetrics, error)
	// EvaluateAndRecord evaluates and stores the result. When profileID is
	// set, the profile's saved habits are replaced in the same transaction.
	EvaluateAndRecord(ctx context.Context, profileID string, habits domain.HabitSnapshot) (*domain.EvaluationRecord, error)
	// History lists records newest first; an empty profileID lists all.
	History(ctx context.Context, profileID string, limit int) ([]*domain.EvaluationRecord, error)
	// Compare evaluates each scenario concurrently. Results keep input order.
	Compare(ctx context.Context, scenarios []domain.HabitSnapshot) ([]*domain.OutcomeMetrics, error)
	Import(ctx context.Context, records []*domain.EvaluationRecord) (int, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type ProfileService interface {
	Create(ctx context.Context, p *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error)
	// Resolve looks a profile up by username first, then by ID.
	Resolve(ctx context.Context, ref string) (*domain.UserProfile, error)
	List(ctx context.Context) ([]*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) error
	SetHabits(ctx context.Context, id string, habits domain.HabitSnapshot) (*domain.UserProfile, error)
	Delete(ctx context.Context, id string) error
}

type ProgressService interface {
	CompleteActivity(ctx context.Context, profileID string, t domain.ActivityType, description string) (*ActivityResult, error)
	RecentActivity(ctx context.Context, profileID string, limit int) ([]*domain.ActivityLog, error)
	Summary(ctx context.Context, profileID string) (*ProgressSummary, error)
}

// ActivityResult is the outcome of completing one activity.
type ActivityResult struct {
	Log    *domain.ActivityLog
	Reward domain.ActivityReward
	Stats  domain.UserStats
}

// ProgressSummary aggregates a profile's stats and activity history.
type ProgressSummary struct {
	Profile  *domain.UserProfile
	Counts   []repository.ActivityCount
	WeekXP   int
	WeekLogs int
}
