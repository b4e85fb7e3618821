package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"prefbot/internal/domain"
	"prefbot/internal/domain/entities"
	"prefbot/internal/domain/theme"
	"prefbot/internal/ports/output"
)

var _ output.PreferenceRepository = (*PreferenceRepository)(nil)

const (
	findPreferenceSQL = `SELECT user_id, locale, theme, created_at, updated_at
FROM preferences WHERE user_id = $1`

	saveLocaleSQL = `INSERT INTO preferences (user_id, locale) VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET locale = EXCLUDED.locale, updated_at = now()`

	saveThemeSQL = `INSERT INTO preferences (user_id, theme) VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = now()`
)

// querier is the subset of *pgxpool.Pool the repository needs.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PreferenceRepository implements output.PreferenceRepository using pgx.
type PreferenceRepository struct {
	q querier
}

// NewPreferenceRepository creates a PreferenceRepository.
func NewPreferenceRepository(q querier) *PreferenceRepository {
	return &PreferenceRepository{q: q}
}

func (r *PreferenceRepository) Find(ctx context.Context, userID string) (*entities.Preference, error) {
	var row preferenceRow
	err := r.q.QueryRow(ctx, findPreferenceSQL, userID).
		Scan(&row.UserID, &row.Locale, &row.Theme, &row.CreatedAt, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPreferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get preference by user id: %w", err)
	}
	p := preferenceToDomain(row)
	return &p, nil
}

func (r *PreferenceRepository) SaveLocale(ctx context.Context, userID, locale string) error {
	if _, err := r.q.Exec(ctx, saveLocaleSQL, userID, locale); err != nil {
		return fmt.Errorf("save locale: %w", err)
	}
	return nil
}

func (r *PreferenceRepository) SaveTheme(ctx context.Context, userID string, id theme.ID) error {
	if _, err := r.q.Exec(ctx, saveThemeSQL, userID, string(id)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
