package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/futureself/internal/domain"
)

// ActivityCount is the number of logged activities of one type.
type ActivityCount struct {
	Type    domain.ActivityType
	Count   int
	TotalXP int
}

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error)
	List(ctx context.Context) ([]*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.ActivityLog) error
	ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.ActivityLog, error)
	ListSince(ctx context.Context, profileID string, since time.Time) ([]*domain.ActivityLog, error)
	CountByType(ctx context.Context, profileID string) ([]ActivityCount, error)
}

type EvaluationRepo interface {
	Create(ctx context.Context, r *domain.EvaluationRecord) error
	GetByID(ctx context.Context, id string) (*domain.EvaluationRecord, error)
	// ListByProfile returns newest first. A limit <= 0 returns every record.
	ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.EvaluationRecord, error)
	// ListAll returns newest first across all profiles, including anonymous records.
	ListAll(ctx context.Context, limit int) ([]*domain.EvaluationRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
