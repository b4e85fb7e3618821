package discord

import (
	"errors"

	"prefbot/internal/domain"
	"prefbot/internal/domain/theme"
	"prefbot/internal/ports/output"
)

// ErrorKey maps a domain error to the message key shown to users.
func ErrorKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedLocale):
		return "error.unsupported_locale"
	case errors.Is(err, theme.ErrUnknown):
		return "error.unknown_theme"
	default:
		return "error.generic"
	}
}

// ErrorMessage is a convenience helper that resolves err to a user-facing
// message in t's locale.
func ErrorMessage(t output.T, err error) string {
	if err == nil {
		return ""
	}
	return t.T(ErrorKey(err), nil)
}
