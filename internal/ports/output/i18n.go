package output

import (
	"context"

	"prefbot/internal/domain/entities"
)

// T exposes message lookup + templating in the caller's current locale.
type T interface {
	// T renders the message identified by key. params fills {name}
	// placeholders and may be nil.
	T(key string, params map[string]any) string
}

// Localizer is a per-caller localization session.
type Localizer interface {
	T
	Locale() string
	DateLocale() string
	SetLocale(code string)
	Init(ctx context.Context, saved string, source LocaleSource)
}

// LocaleSource reports the locale of the environment the caller runs in
// (operating system, chat client).
type LocaleSource interface {
	SystemLocale(ctx context.Context) (string, error)
}

// Catalog is the immutable message store sessions are created from.
type Catalog interface {
	Has(code string) bool
	SupportedLocales() []entities.Locale
	NewLocalizer() Localizer
}
