package entities

import (
	"time"

	"prefbot/internal/domain/theme"
)

// Preference is the saved UI configuration of one user.
type Preference struct {
	UserID    string
	Locale    string // "" = never chosen, detect on each session
	Theme     theme.ID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLocale reports whether the user picked a locale explicitly.
func (p *Preference) HasLocale() bool {
	return p != nil && p.Locale != ""
}
