package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adilzhanb/zhospar/internal/db"
	"github.com/adilzhanb/zhospar/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `SELECT id, name, language, formality, emoji_usage, reminders_enabled,
		best_streak, created_at, updated_at
		FROM profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var (
		p         domain.UserProfile
		reminders int
		createdAt string
		updatedAt string
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Language,
		&p.Formality,
		&p.EmojiUsage,
		&reminders,
		&p.BestStreak,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.RemindersEnabled = reminders != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		p.UpdatedAt = t
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT INTO profiles (id, name, language, formality, emoji_usage,
		reminders_enabled, best_streak, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			language = excluded.language,
			formality = excluded.formality,
			emoji_usage = excluded.emoji_usage,
			reminders_enabled = excluded.reminders_enabled,
			best_streak = excluded.best_streak,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Language),
		string(p.Formality),
		string(p.EmojiUsage),
		boolToInt(p.RemindersEnabled),
		p.BestStreak,
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProfileRepo) ListIDsWithPlan(ctx context.Context) ([]string, error) {
	query := `SELECT p.id FROM profiles p
		JOIN plans pl ON pl.user_id = p.id
		ORDER BY p.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users with plan: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
