package domain

import "errors"

// Domain errors.
var (
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrUnsupportedLocale  = errors.New("locale is not in the catalog")
	ErrLocaleUnavailable  = errors.New("system locale unavailable")
)
