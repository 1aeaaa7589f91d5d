package services

import (
	"context"

	"github.com/apavlova/daybook/internal/logging"
	"github.com/apavlova/daybook/internal/store"
)

const prefTheme = "app_theme"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeService persists the UI theme preference.
type ThemeService struct {
	store *store.Store
	log   logging.Logger
}

func NewThemeService(st *store.Store, log logging.Logger) *ThemeService {
	return &ThemeService{store: st, log: log}
}

// GetTheme returns the stored theme, defaulting to light.
func (s *ThemeService) GetTheme(ctx context.Context) string {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to access preferences", "error", err)
		return ThemeLight
	}

	theme, ok, err := repos.Prefs.Get(ctx, prefTheme)
	if err != nil {
		s.log.Error(ctx, "failed to read theme", "error", err)
		return ThemeLight
	}
	if !ok || theme == "" {
		return ThemeLight
	}
	return theme
}

// SetTheme stores the theme. Failures are logged and swallowed.
func (s *ThemeService) SetTheme(ctx context.Context, theme string) {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to access preferences", "error", err)
		return
	}
	if err := repos.Prefs.Set(ctx, prefTheme, theme); err != nil {
		s.log.Error(ctx, "failed to persist theme", "error", err)
	}
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *ThemeService) ToggleTheme(ctx context.Context) string {
	theme := ThemeLight
	if s.GetTheme(ctx) == ThemeLight {
		theme = ThemeDark
	}
	s.SetTheme(ctx, theme)
	return theme
}
