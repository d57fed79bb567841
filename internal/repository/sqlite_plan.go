package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adilzhanb/zhospar/internal/db"
	"github.com/adilzhanb/zhospar/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. A plan row
// plus its plan_years rows form one aggregate keyed by user ID.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Get(ctx context.Context, userID string) (*domain.Plan, error) {
	query := `SELECT plan_id, goal, language, formality, created_at
		FROM plans WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var (
		p         domain.Plan
		createdAt sql.NullString
	)
	err := row.Scan(&p.ID, &p.Goal, &p.Language, &p.Formality, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.CreatedAt = parseNullableTime(createdAt, time.RFC3339)

	years, err := r.listYears(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Years = years
	return &p, nil
}

func (r *SQLitePlanRepo) listYears(ctx context.Context, userID string) ([]domain.YearEntry, error) {
	query := `SELECT year, title, description, milestones
		FROM plan_years WHERE user_id = ? ORDER BY year`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing plan years: %w", err)
	}
	defer rows.Close()

	var years []domain.YearEntry
	for rows.Next() {
		var (
			y          domain.YearEntry
			milestones string
		)
		if err := rows.Scan(&y.Year, &y.Title, &y.Description, &milestones); err != nil {
			return nil, fmt.Errorf("scanning plan year: %w", err)
		}
		if err := json.Unmarshal([]byte(milestones), &y.Milestones); err != nil {
			return nil, fmt.Errorf("decoding milestones for year %d: %w", y.Year, err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (r *SQLitePlanRepo) Save(ctx context.Context, userID string, p *domain.Plan) error {
	query := `INSERT INTO plans (user_id, plan_id, goal, language, formality, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			plan_id = excluded.plan_id,
			goal = excluded.goal,
			language = excluded.language,
			formality = excluded.formality,
			created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query,
		userID,
		p.ID,
		p.Goal,
		string(p.Language),
		string(p.Formality),
		nullableTimeToString(p.CreatedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}

	// Replace the year entries wholesale; a plan's years only change on
	// full regeneration.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_years WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing plan years: %w", err)
	}
	for _, y := range p.Years {
		milestones, err := json.Marshal(y.Milestones)
		if err != nil {
			return fmt.Errorf("encoding milestones for year %d: %w", y.Year, err)
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO plan_years (user_id, year, title, description, milestones)
			VALUES (?, ?, ?, ?, ?)`,
			userID, y.Year, y.Title, y.Description, string(milestones),
		)
		if err != nil {
			return fmt.Errorf("inserting plan year %d: %w", y.Year, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) SetCreatedAt(ctx context.Context, userID string, createdAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE plans SET created_at = ? WHERE user_id = ?`,
		createdAt.UTC().Format(time.RFC3339), userID,
	)
	if err != nil {
		return fmt.Errorf("stamping plan creation time: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking stamp result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan for user %s: %w", userID, ErrNotFound)
	}
	return nil
}
