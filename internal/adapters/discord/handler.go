package discord

import (
	"log/slog"

	"prefbot/internal/ports/input"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	preferences input.PreferenceUseCase
	logger      *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(preferences input.PreferenceUseCase, logger *slog.Logger) *Handler {
	return &Handler{
		preferences: preferences,
		logger:      logger,
	}
}
