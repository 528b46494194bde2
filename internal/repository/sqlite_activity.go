package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/futureself/internal/db"
	"github.com/alexanderramin/futureself/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.ActivityLog) error {
	query := `INSERT INTO activity_logs (id, profile_id, type, description, xp_earned, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ProfileID,
		string(a.Type),
		a.Description,
		a.XPEarned,
		formatTime(a.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting activity log: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.ActivityLog, error) {
	query := `SELECT id, profile_id, type, description, xp_earned, completed_at
		FROM activity_logs WHERE profile_id = ?
		ORDER BY completed_at DESC, id DESC`
	args := []any{profileID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities by profile: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) ListSince(ctx context.Context, profileID string, since time.Time) ([]*domain.ActivityLog, error) {
	query := `SELECT id, profile_id, type, description, xp_earned, completed_at
		FROM activity_logs
		WHERE profile_id = ? AND completed_at >= ?
		ORDER BY completed_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, profileID, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing recent activities: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) CountByType(ctx context.Context, profileID string) ([]ActivityCount, error) {
	query := `SELECT type, COUNT(*), COALESCE(SUM(xp_earned), 0)
		FROM activity_logs WHERE profile_id = ?
		GROUP BY type ORDER BY type`
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("counting activities: %w", err)
	}
	defer rows.Close()

	var counts []ActivityCount
	for rows.Next() {
		var c ActivityCount
		var typ string
		if err := rows.Scan(&typ, &c.Count, &c.TotalXP); err != nil {
			return nil, fmt.Errorf("scanning activity count: %w", err)
		}
		c.Type = domain.ActivityType(typ)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteActivityRepo) scanActivities(rows *sql.Rows) ([]*domain.ActivityLog, error) {
	var logs []*domain.ActivityLog
	for rows.Next() {
		a, err := r.scanActivity(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return logs, nil
}

func (r *SQLiteActivityRepo) scanActivity(row rowScanner) (*domain.ActivityLog, error) {
	var a domain.ActivityLog
	var typ, completedAtStr string
	if err := row.Scan(&a.ID, &a.ProfileID, &typ, &a.Description, &a.XPEarned, &completedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("activity log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity log: %w", err)
	}
	a.Type = domain.ActivityType(typ)

	var err error
	if a.CompletedAt, err = parseTime(completedAtStr); err != nil {
		return nil, fmt.Errorf("parsing completed_at: %w", err)
	}
	return &a, nil
}
