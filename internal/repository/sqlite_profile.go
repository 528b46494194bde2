package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/futureself/internal/db"
	"github.com/alexanderramin/futureself/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

const profileColumns = `id, username, first_name, last_name, age, study_role, study_detail,
	level, xp, intelligence, vitality, strength, discipline, peace,
	total_study_sessions, total_workouts, total_meditations, current_stress,
	sleep_hours, study_hours, screen_time, exercise_days, stress_level,
	created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Username, p.FirstName, p.LastName, p.Age, string(p.StudyRole), p.StudyDetail,
		p.Stats.Level, p.Stats.XP,
		p.Stats.Intelligence, p.Stats.Vitality, p.Stats.Strength, p.Stats.Discipline, p.Stats.Peace,
		p.Stats.TotalStudySessions, p.Stats.TotalWorkouts, p.Stats.TotalMeditations, p.Stats.CurrentStress,
		p.Habits.SleepHours, p.Habits.StudyHours, p.Habits.ScreenTime, p.Habits.ExerciseDays, p.Habits.StressLevel,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("creating profile %q: %w", p.Username, ErrDuplicateUsername)
		}
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProfileRepo) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = ?`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, username))
}

func (r *SQLiteProfileRepo) List(ctx context.Context) ([]*domain.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.UserProfile
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteProfileRepo) Update(ctx context.Context, p *domain.UserProfile) error {
	query := `UPDATE profiles SET username = ?, first_name = ?, last_name = ?, age = ?,
		study_role = ?, study_detail = ?,
		level = ?, xp = ?, intelligence = ?, vitality = ?, strength = ?, discipline = ?, peace = ?,
		total_study_sessions = ?, total_workouts = ?, total_meditations = ?, current_stress = ?,
		sleep_hours = ?, study_hours = ?, screen_time = ?, exercise_days = ?, stress_level = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Username, p.FirstName, p.LastName, p.Age, string(p.StudyRole), p.StudyDetail,
		p.Stats.Level, p.Stats.XP,
		p.Stats.Intelligence, p.Stats.Vitality, p.Stats.Strength, p.Stats.Discipline, p.Stats.Peace,
		p.Stats.TotalStudySessions, p.Stats.TotalWorkouts, p.Stats.TotalMeditations, p.Stats.CurrentStress,
		p.Habits.SleepHours, p.Habits.StudyHours, p.Habits.ScreenTime, p.Habits.ExerciseDays, p.Habits.StressLevel,
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("renaming profile to %q: %w", p.Username, ErrDuplicateUsername)
		}
		return fmt.Errorf("updating profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the profile and, through ON DELETE CASCADE, its activity
// logs and evaluations.
func (r *SQLiteProfileRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProfileRepo) scanProfile(row rowScanner) (*domain.UserProfile, error) {
	var p domain.UserProfile
	var role, createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.Username, &p.FirstName, &p.LastName, &p.Age, &role, &p.StudyDetail,
		&p.Stats.Level, &p.Stats.XP,
		&p.Stats.Intelligence, &p.Stats.Vitality, &p.Stats.Strength, &p.Stats.Discipline, &p.Stats.Peace,
		&p.Stats.TotalStudySessions, &p.Stats.TotalWorkouts, &p.Stats.TotalMeditations, &p.Stats.CurrentStress,
		&p.Habits.SleepHours, &p.Habits.StudyHours, &p.Habits.ScreenTime, &p.Habits.ExerciseDays, &p.Habits.StressLevel,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.StudyRole = domain.StudyRole(role)

	if p.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
