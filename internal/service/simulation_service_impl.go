package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/futureself/internal/db"
	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/repository"
	"github.com/alexanderramin/futureself/internal/simulation"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type simulationService struct {
	evaluations repository.EvaluationRepo
	uow         db.UnitOfWork
	engine      simulation.Engine
	observer    UseCaseObserver
}

func NewSimulationService(
	evaluations repository.EvaluationRepo,
	uow db.UnitOfWork,
	engine simulation.Engine,
	observers ...UseCaseObserver,
) SimulationService {
	return &simulationService{
		evaluations: evaluations,
		uow:         uow,
		engine:      engine,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *simulationService) Evaluate(_ context.Context, habits domain.HabitSnapshot) (*domain.OutcomeMetrics, error) {
	if err := habits.Validate(); err != nil {
		return nil, err
	}
	m := s.engine.Evaluate(habits)
	return &m, nil
}

func (s *simulationService) EvaluateAndRecord(ctx context.Context, profileID string, habits domain.HabitSnapshot) (rec *domain.EvaluationRecord, err error) {
	fields := map[string]any{"profile_id": profileID}
	defer observe(ctx, s.observer, "evaluate-and-record", time.Now().UTC(), fields, &err)

	if err = habits.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec = &domain.EvaluationRecord{
		ID:          uuid.New().String(),
		Habits:      habits,
		Metrics:     s.engine.Evaluate(habits),
		EvaluatedAt: now,
	}
	if profileID != "" {
		rec.ProfileID = &profileID
	}
	fields["biggest_impact"] = string(rec.Metrics.BiggestImpact)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if profileID != "" {
			txProfiles := repository.NewSQLiteProfileRepo(tx)
			p, err := txProfiles.GetByID(ctx, profileID)
			if err != nil {
				return err
			}
			p.Habits = habits
			p.UpdatedAt = now
			if err := txProfiles.Update(ctx, p); err != nil {
				return err
			}
		}
		return repository.NewSQLiteEvaluationRepo(tx).Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *simulationService) History(ctx context.Context, profileID string, limit int) ([]*domain.EvaluationRecord, error) {
	if profileID == "" {
		return s.evaluations.ListAll(ctx, limit)
	}
	return s.evaluations.ListByProfile(ctx, profileID, limit)
}

func (s *simulationService) Compare(ctx context.Context, scenarios []domain.HabitSnapshot) (results []*domain.OutcomeMetrics, err error) {
	defer observe(ctx, s.observer, "compare", time.Now().UTC(), map[string]any{"scenarios": len(scenarios)}, &err)

	results = make([]*domain.OutcomeMetrics, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := h.Validate(); err != nil {
				return fmt.Errorf("scenario %d: %w", i+1, err)
			}
			m := s.engine.Evaluate(h)
			results[i] = &m
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Import stores previously exported records. Records whose ID already exists
// are skipped; the count of inserted records is returned. Metrics are
// recomputed from each record's habits.
func (s *simulationService) Import(ctx context.Context, records []*domain.EvaluationRecord) (n int, err error) {
	defer observe(ctx, s.observer, "import-history", time.Now().UTC(), map[string]any{"records": len(records)}, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvals := repository.NewSQLiteEvaluationRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		for _, rec := range records {
			if _, err := txEvals.GetByID(ctx, rec.ID); err == nil {
				continue
			} else if !errorsIsNotFound(err) {
				return err
			}
			if rec.ProfileID != nil {
				// Records from a profile that no longer exists become anonymous.
				if _, err := txProfiles.GetByID(ctx, *rec.ProfileID); errorsIsNotFound(err) {
					rec.ProfileID = nil
				} else if err != nil {
					return err
				}
			}
			if err := rec.Habits.Validate(); err != nil {
				return fmt.Errorf("record %s: %w", rec.ID, err)
			}
			rec.Metrics = s.reevaluate(rec)
			if err := txEvals.Create(ctx, rec); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// reevaluate derives metrics from the record's habits so archived scores
// cannot carry values the engine would never produce. The record keeps its
// original base year when it has a plausible one.
func (s *simulationService) reevaluate(rec *domain.EvaluationRecord) domain.OutcomeMetrics {
	if p := rec.Metrics.Projection; len(p) > 0 && p[0].Year >= minImportBaseYear && p[0].Year <= maxImportBaseYear {
		return simulation.Evaluate(rec.Habits, p[0].Year)
	}
	return s.engine.Evaluate(rec.Habits)
}

const (
	minImportBaseYear = 1900
	maxImportBaseYear = 9999
)

func (s *simulationService) Prune(ctx context.Context, before time.Time) (int64, error) {
	return s.evaluations.DeleteOlderThan(ctx, before)
}
