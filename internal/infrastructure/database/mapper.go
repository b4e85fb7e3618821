package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"prefbot/internal/domain/entities"
	"prefbot/internal/domain/theme"
)

// preferenceRow mirrors one row of the preferences table.
type preferenceRow struct {
	UserID    string
	Locale    string
	Theme     string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// preferenceToDomain maps a row; a theme id no longer offered maps to theme.Default.
func preferenceToDomain(r preferenceRow) entities.Preference {
	id, err := theme.Parse(r.Theme)
	if err != nil {
		id = theme.Default
	}
	return entities.Preference{
		UserID:    r.UserID,
		Locale:    r.Locale,
		Theme:     id,
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}
