package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"prefbot/internal/domain"
	"prefbot/internal/domain/entities"
	"prefbot/internal/domain/theme"
	"prefbot/internal/ports/input"
	"prefbot/internal/ports/output"
)

var _ input.PreferenceUseCase = (*PreferenceService)(nil)

type PreferenceService struct {
	prefRepo output.PreferenceRepository
	catalog  output.Catalog
	logger   *slog.Logger
}

func NewPreferenceService(
	prefRepo output.PreferenceRepository,
	catalog output.Catalog,
	logger *slog.Logger,
) *PreferenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferenceService{
		prefRepo: prefRepo,
		catalog:  catalog,
		logger:   logger,
	}
}

// Localizer builds a session for userID: the saved locale when there is one,
// otherwise whatever source reports.
func (s *PreferenceService) Localizer(ctx context.Context, userID string, source output.LocaleSource) output.Localizer {
	l := s.catalog.NewLocalizer()
	l.Init(ctx, s.savedLocale(ctx, userID), source)
	return l
}

// SetLocale persists code and returns a session in that locale.
func (s *PreferenceService) SetLocale(ctx context.Context, userID, code string) (output.Localizer, error) {
	if !s.catalog.Has(code) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, code)
	}
	if err := s.prefRepo.SaveLocale(ctx, userID, code); err != nil {
		return nil, err
	}
	l := s.catalog.NewLocalizer()
	l.SetLocale(code)
	return l, nil
}

func (s *PreferenceService) SetTheme(ctx context.Context, userID, raw string) (theme.ID, error) {
	id, err := theme.Parse(raw)
	if err != nil {
		return "", err
	}
	if err := s.prefRepo.SaveTheme(ctx, userID, id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *PreferenceService) Theme(ctx context.Context, userID string) theme.ID {
	pref, err := s.find(ctx, userID)
	if err != nil || pref == nil {
		return theme.Default
	}
	return pref.Theme
}

func (s *PreferenceService) SupportedLocales() []entities.Locale {
	return s.catalog.SupportedLocales()
}

func (s *PreferenceService) savedLocale(ctx context.Context, userID string) string {
	pref, err := s.find(ctx, userID)
	if err != nil || !pref.HasLocale() {
		return ""
	}
	return pref.Locale
}

// find treats a missing row as "no preference"; other read errors are logged
// and degrade the same way.
func (s *PreferenceService) find(ctx context.Context, userID string) (*entities.Preference, error) {
	pref, err := s.prefRepo.Find(ctx, userID)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Warn("preferences: read failed, using defaults", "user", userID, "error", err)
		return nil, err
	}
	return pref, nil
}
