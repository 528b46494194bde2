package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/repository"
	"github.com/alexanderramin/futureself/internal/simulation"
	"github.com/alexanderramin/futureself/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	db         *sql.DB
	simulation SimulationService
	profiles   ProfileService
	progress   ProgressService
	observer   *recordingObserver
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	obs := &recordingObserver{}
	return &testServices{
		db:         database,
		simulation: NewSimulationService(repository.NewSQLiteEvaluationRepo(database), uow, simulation.NewEngine(2024), obs),
		profiles:   NewProfileService(repository.NewSQLiteProfileRepo(database), uow, obs),
		progress:   NewProgressService(repository.NewSQLiteActivityRepo(database), uow, obs),
		observer:   obs,
	}
}

func (s *testServices) createProfile(t *testing.T, username string, opts ...testutil.ProfileOption) *domain.UserProfile {
	t.Helper()
	p := testutil.NewTestProfile(username, opts...)
	require.NoError(t, s.profiles.Create(context.Background(), p))
	return p
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		return UseCaseEvent{}
	}
	return o.events[len(o.events)-1]
}
