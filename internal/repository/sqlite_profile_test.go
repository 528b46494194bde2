package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("ada",
		testutil.WithName("Ada", "Lovelace"),
		testutil.WithAge(21),
		testutil.WithStudyRole(domain.StudyRoleCollege, "Mathematics"),
		testutil.WithHabits(domain.HabitSnapshot{SleepHours: 8, StudyHours: 15, ScreenTime: 2, ExerciseDays: 5, StressLevel: 3}),
	)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)
	assert.Equal(t, "Ada Lovelace", got.DisplayName())
	assert.Equal(t, 21, got.Age)
	assert.Equal(t, domain.StudyRoleCollege, got.StudyRole)
	assert.Equal(t, "Mathematics", got.StudyDetail)
	assert.Equal(t, p.Habits, got.Habits)
	assert.Equal(t, domain.NewUserStats(), got.Stats)
	assert.WithinDuration(t, p.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestProfileRepo_GetByUsername(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("grace")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByUsername(ctx, "grace")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_DuplicateUsername(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProfile("linus")))
	err := repo.Create(ctx, testutil.NewTestProfile("linus"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestProfileRepo_ListOrderedByUsername(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"zoe", "amir", "mei"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestProfile(name)))
	}

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "amir", profiles[0].Username)
	assert.Equal(t, "mei", profiles[1].Username)
	assert.Equal(t, "zoe", profiles[2].Username)
}

func TestProfileRepo_UpdateStatsAndHabits(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("kai")
	require.NoError(t, repo.Create(ctx, p))

	p.Stats.ApplyActivity(domain.ActivityMeditate)
	p.Habits.SleepHours = 9
	p.UpdatedAt = p.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Stats.XP)
	assert.Equal(t, 5, got.Stats.Peace)
	assert.Equal(t, 8, got.Stats.CurrentStress)
	assert.Equal(t, 1, got.Stats.TotalMeditations)
	assert.Equal(t, 9.0, got.Habits.SleepHours)
}

func TestProfileRepo_UpdateMissing(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	err := repo.Update(context.Background(), testutil.NewTestProfile("ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_DeleteCascades(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()
	profiles := NewSQLiteProfileRepo(conn)
	activities := NewSQLiteActivityRepo(conn)
	evaluations := NewSQLiteEvaluationRepo(conn)

	p := testutil.NewTestProfile("temp")
	require.NoError(t, profiles.Create(ctx, p))
	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(p.ID, domain.ActivityStudy)))
	require.NoError(t, evaluations.Create(ctx, testutil.NewTestEvaluation(testutil.WithProfileID(p.ID))))
	require.NoError(t, evaluations.Create(ctx, testutil.NewTestEvaluation()))

	require.NoError(t, profiles.Delete(ctx, p.ID))

	logs, err := activities.ListByProfile(ctx, p.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)

	all, err := evaluations.ListAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1, "anonymous evaluation survives")
	assert.Nil(t, all[0].ProfileID)

	assert.ErrorIs(t, profiles.Delete(ctx, p.ID), ErrNotFound)
}

func TestProfileRepo_DeleteCascadesOnFileDB(t *testing.T) {
	conn := testutil.NewFileTestDB(t)
	conn.SetMaxOpenConns(4)
	ctx := context.Background()
	profiles := NewSQLiteProfileRepo(conn)
	activities := NewSQLiteActivityRepo(conn)
	evaluations := NewSQLiteEvaluationRepo(conn)

	// Pin a connection so later statements spread across the pool.
	held, err := conn.Conn(ctx)
	require.NoError(t, err)
	defer held.Close()

	p := testutil.NewTestProfile("pooled")
	require.NoError(t, profiles.Create(ctx, p))
	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(p.ID, domain.ActivityWorkout)))
	require.NoError(t, evaluations.Create(ctx, testutil.NewTestEvaluation(testutil.WithProfileID(p.ID))))

	require.NoError(t, profiles.Delete(ctx, p.ID))

	logs, err := activities.ListByProfile(ctx, p.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
	all, err := evaluations.ListAll(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = activities.Create(ctx, testutil.NewTestActivity("no-such-profile", domain.ActivityStudy))
	assert.Error(t, err, "orphan activity rejected")
}
