package input

import (
	"context"

	"prefbot/internal/domain/entities"
	"prefbot/internal/domain/theme"
	"prefbot/internal/ports/output"
)

type PreferenceUseCase interface {
	Localizer(ctx context.Context, userID string, source output.LocaleSource) output.Localizer
	SetLocale(ctx context.Context, userID, code string) (output.Localizer, error)
	SetTheme(ctx context.Context, userID, raw string) (theme.ID, error)
	Theme(ctx context.Context, userID string) theme.ID
	SupportedLocales() []entities.Locale
}
