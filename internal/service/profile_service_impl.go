package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/futureself/internal/db"
	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/repository"
	"github.com/google/uuid"
)

type profileService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{profiles: profiles, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Create(ctx context.Context, p *domain.UserProfile) (err error) {
	defer observe(ctx, s.observer, "create-profile", time.Now().UTC(), map[string]any{"username": p.Username}, &err)

	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" {
		return fmt.Errorf("username is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must be non-negative, got %d", p.Age)
	}
	if p.StudyRole != "" && !domain.ValidStudyRoles[p.StudyRole] {
		return fmt.Errorf("invalid study role %q", p.StudyRole)
	}
	if err = p.Habits.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Stats.Level == 0 {
		p.Stats = domain.NewUserStats()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.profiles.Create(ctx, p)
}

func (s *profileService) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *profileService) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	return s.profiles.GetByUsername(ctx, username)
}

func (s *profileService) Resolve(ctx context.Context, ref string) (*domain.UserProfile, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("profile reference is empty: %w", repository.ErrNotFound)
	}
	p, err := s.profiles.GetByUsername(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	p, err = s.profiles.GetByID(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("profile %q: %w", ref, repository.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) List(ctx context.Context) ([]*domain.UserProfile, error) {
	return s.profiles.List(ctx)
}

func (s *profileService) Update(ctx context.Context, p *domain.UserProfile) error {
	if err := p.Habits.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.profiles.Update(ctx, p)
}

func (s *profileService) SetHabits(ctx context.Context, id string, habits domain.HabitSnapshot) (*domain.UserProfile, error) {
	if err := habits.Validate(); err != nil {
		return nil, err
	}
	var updated *domain.UserProfile
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		p, err := txProfiles.GetByID(ctx, id)
		if err != nil {
			return err
		}
		p.Habits = habits
		p.UpdatedAt = time.Now().UTC()
		if err := txProfiles.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *profileService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-profile", time.Now().UTC(), map[string]any{"profile_id": id}, &err)
	return s.profiles.Delete(ctx, id)
}
