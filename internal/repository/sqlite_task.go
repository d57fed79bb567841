package repository

import (
	"context"
	"fmt"

	"github.com/adilzhanb/zhospar/internal/db"
	"github.com/adilzhanb/zhospar/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Rows hold the
// generated task text only; completion state lives in the completions table
// and is merged by the service layer.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) ListByDate(ctx context.Context, userID, date string) ([]domain.TaskEntry, error) {
	query := `SELECT user_id, date, seq, text FROM daily_tasks
		WHERE user_id = ? AND date = ? ORDER BY seq`
	return r.list(ctx, query, userID, date)
}

func (r *SQLiteTaskRepo) ListByDateRange(ctx context.Context, userID, from, to string) ([]domain.TaskEntry, error) {
	query := `SELECT user_id, date, seq, text FROM daily_tasks
		WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date, seq`
	return r.list(ctx, query, userID, from, to)
}

func (r *SQLiteTaskRepo) list(ctx context.Context, query string, args ...any) ([]domain.TaskEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing daily tasks: %w", err)
	}
	defer rows.Close()

	var entries []domain.TaskEntry
	for rows.Next() {
		var e domain.TaskEntry
		if err := rows.Scan(&e.UserID, &e.Date, &e.Seq, &e.Text); err != nil {
			return nil, fmt.Errorf("scanning daily task: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteTaskRepo) CreateBatch(ctx context.Context, userID, date string, texts []string) error {
	// OR IGNORE keeps a concurrent first read of the same date from
	// failing on the primary key; the first writer's text wins.
	for i, text := range texts {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO daily_tasks (user_id, date, seq, text) VALUES (?, ?, ?, ?)`,
			userID, date, i+1, text,
		)
		if err != nil {
			return fmt.Errorf("inserting daily task %d for %s: %w", i+1, date, err)
		}
	}
	return nil
}
