package output

import (
	"context"

	"prefbot/internal/domain/entities"
	"prefbot/internal/domain/theme"
)

type PreferenceRepository interface {
	Find(ctx context.Context, userID string) (*entities.Preference, error)
	SaveLocale(ctx context.Context, userID, locale string) error
	SaveTheme(ctx context.Context, userID string, id theme.ID) error
}
