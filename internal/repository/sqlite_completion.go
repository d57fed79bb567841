package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adilzhanb/zhospar/internal/db"
	"github.com/adilzhanb/zhospar/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

// NewSQLiteCompletionRepo creates a new SQLiteCompletionRepo.
func NewSQLiteCompletionRepo(conn db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn}
}

func (r *SQLiteCompletionRepo) Upsert(ctx context.Context, c domain.Completion) error {
	query := `INSERT INTO completions (user_id, date, seq, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, date, seq) DO UPDATE SET
			completed_at = excluded.completed_at`
	_, err := r.db.ExecContext(ctx, query,
		c.UserID, c.Date, c.Seq, c.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) ListByDate(ctx context.Context, userID, date string) ([]domain.Completion, error) {
	query := `SELECT user_id, date, seq, completed_at FROM completions
		WHERE user_id = ? AND date = ? ORDER BY seq`
	return r.list(ctx, query, userID, date)
}

func (r *SQLiteCompletionRepo) ListByDateRange(ctx context.Context, userID, from, to string) ([]domain.Completion, error) {
	query := `SELECT user_id, date, seq, completed_at FROM completions
		WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date, seq`
	return r.list(ctx, query, userID, from, to)
}

func (r *SQLiteCompletionRepo) list(ctx context.Context, query string, args ...any) ([]domain.Completion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var completions []domain.Completion
	for rows.Next() {
		var (
			c  domain.Completion
			at string
		)
		if err := rows.Scan(&c.UserID, &c.Date, &c.Seq, &at); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("parsing completion time: %w", err)
		}
		c.CompletedAt = t
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (r *SQLiteCompletionRepo) ListDates(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT DISTINCT date FROM completions WHERE user_id = ?`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing completion dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning completion date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *SQLiteCompletionRepo) Count(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM completions WHERE user_id = ?`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting completions: %w", err)
	}
	return n, nil
}
