package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/futureself/internal/db"
	"github.com/alexanderramin/futureself/internal/domain"
)

// SQLiteEvaluationRepo implements EvaluationRepo using a SQLite database.
// The projection is stored as a JSON array alongside the scalar scores.
type SQLiteEvaluationRepo struct {
	db db.DBTX
}

// NewSQLiteEvaluationRepo creates a new SQLiteEvaluationRepo.
func NewSQLiteEvaluationRepo(conn db.DBTX) *SQLiteEvaluationRepo {
	return &SQLiteEvaluationRepo{db: conn}
}

const evaluationColumns = `id, profile_id, sleep_hours, study_hours, screen_time, exercise_days, stress_level,
	academic_score, burnout_risk, health_score, biggest_impact, projection, evaluated_at`

func (r *SQLiteEvaluationRepo) Create(ctx context.Context, e *domain.EvaluationRecord) error {
	projection := e.Metrics.Projection
	if projection == nil {
		projection = []domain.ProjectionPoint{}
	}
	projJSON, err := json.Marshal(projection)
	if err != nil {
		return fmt.Errorf("encoding projection: %w", err)
	}

	query := `INSERT INTO evaluations (` + evaluationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		nullableString(e.ProfileID),
		e.Habits.SleepHours, e.Habits.StudyHours, e.Habits.ScreenTime, e.Habits.ExerciseDays, e.Habits.StressLevel,
		e.Metrics.AcademicScore, e.Metrics.BurnoutRisk, e.Metrics.HealthScore,
		string(e.Metrics.BiggestImpact),
		string(projJSON),
		formatTime(e.EvaluatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting evaluation: %w", err)
	}
	return nil
}

func (r *SQLiteEvaluationRepo) GetByID(ctx context.Context, id string) (*domain.EvaluationRecord, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = ?`
	return r.scanEvaluation(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteEvaluationRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.EvaluationRecord, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations
		WHERE profile_id = ?
		ORDER BY evaluated_at DESC, id DESC`
	args := []any{profileID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

func (r *SQLiteEvaluationRepo) ListAll(ctx context.Context, limit int) ([]*domain.EvaluationRecord, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations
		ORDER BY evaluated_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

func (r *SQLiteEvaluationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM evaluations WHERE evaluated_at < ?`, formatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("pruning evaluations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned evaluations: %w", err)
	}
	return n, nil
}

func (r *SQLiteEvaluationRepo) list(ctx context.Context, query string, args ...any) ([]*domain.EvaluationRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing evaluations: %w", err)
	}
	defer rows.Close()

	var records []*domain.EvaluationRecord
	for rows.Next() {
		e, err := r.scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evaluations: %w", err)
	}
	return records, nil
}

func (r *SQLiteEvaluationRepo) scanEvaluation(row rowScanner) (*domain.EvaluationRecord, error) {
	var e domain.EvaluationRecord
	var profileID sql.NullString
	var impact, projJSON, evaluatedAtStr string

	err := row.Scan(
		&e.ID, &profileID,
		&e.Habits.SleepHours, &e.Habits.StudyHours, &e.Habits.ScreenTime, &e.Habits.ExerciseDays, &e.Habits.StressLevel,
		&e.Metrics.AcademicScore, &e.Metrics.BurnoutRisk, &e.Metrics.HealthScore,
		&impact, &projJSON, &evaluatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("evaluation: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning evaluation: %w", err)
	}
	e.ProfileID = stringPtr(profileID)
	e.Metrics.BiggestImpact = domain.Impact(impact)

	if err := json.Unmarshal([]byte(projJSON), &e.Metrics.Projection); err != nil {
		return nil, fmt.Errorf("decoding projection: %w", err)
	}
	if e.EvaluatedAt, err = parseTime(evaluatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing evaluated_at: %w", err)
	}
	return &e, nil
}
