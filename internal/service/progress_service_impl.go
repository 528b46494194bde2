package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/futureself/internal/db"
	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/repository"
	"github.com/google/uuid"
)

// summaryWindow is how far back Summary looks for the weekly totals.
const summaryWindow = 7 * 24 * time.Hour

type progressService struct {
	activities repository.ActivityRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewProgressService(activities repository.ActivityRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProgressService {
	return &progressService{activities: activities, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *progressService) CompleteActivity(ctx context.Context, profileID string, t domain.ActivityType, description string) (res *ActivityResult, err error) {
	fields := map[string]any{"profile_id": profileID, "type": string(t)}
	defer observe(ctx, s.observer, "complete-activity", time.Now().UTC(), fields, &err)

	if !domain.ValidActivityTypes[string(t)] {
		return nil, fmt.Errorf("unknown activity type %q", t)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		txActivities := repository.NewSQLiteActivityRepo(tx)

		p, err := txProfiles.GetByID(ctx, profileID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		reward := p.Stats.ApplyActivity(t)
		p.UpdatedAt = now
		if err := txProfiles.Update(ctx, p); err != nil {
			return err
		}

		log := &domain.ActivityLog{
			ID:          uuid.New().String(),
			ProfileID:   p.ID,
			Type:        t,
			Description: description,
			XPEarned:    reward.XPEarned,
			CompletedAt: now,
		}
		if err := txActivities.Create(ctx, log); err != nil {
			return err
		}

		res = &ActivityResult{Log: log, Reward: reward, Stats: p.Stats}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["leveled_up"] = res.Reward.LeveledUp
	return res, nil
}

func (s *progressService) RecentActivity(ctx context.Context, profileID string, limit int) ([]*domain.ActivityLog, error) {
	return s.activities.ListByProfile(ctx, profileID, limit)
}

func (s *progressService) Summary(ctx context.Context, profileID string) (*ProgressSummary, error) {
	var summary ProgressSummary
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, err := repository.NewSQLiteProfileRepo(tx).GetByID(ctx, profileID)
		if err != nil {
			return err
		}
		summary.Profile = p

		txActivities := repository.NewSQLiteActivityRepo(tx)
		if summary.Counts, err = txActivities.CountByType(ctx, profileID); err != nil {
			return err
		}
		recent, err := txActivities.ListSince(ctx, profileID, time.Now().UTC().Add(-summaryWindow))
		if err != nil {
			return err
		}
		for _, a := range recent {
			summary.WeekXP += a.XPEarned
		}
		summary.WeekLogs = len(recent)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
