// Package cli implements the interactive daybook shell: a small REPL over
// the security, entry, streak and theme services.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/apavlova/daybook/internal/config"
	"github.com/apavlova/daybook/internal/export"
	"github.com/apavlova/daybook/internal/logging"
	"github.com/apavlova/daybook/internal/services"
	"github.com/apavlova/daybook/internal/store"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	store    *store.Store
	security *services.SecurityService
	entries  *services.EntryService
	streaks  *services.StreakService
	themes   *services.ThemeService
	exporter *export.Exporter
	reader   *bufio.Reader
}

// NewApp wires the services over one shared store. The database itself is
// opened lazily by the first operation that needs it.
func NewApp(c *config.Config, log logging.Logger) *App {
	st := store.New(c.DatabasePath)

	security := services.NewSecurityService(st, log)
	entries := services.NewEntryService(st, security, log)
	streaks := services.NewStreakService(entries, st, security, log)
	themes := services.NewThemeService(st, log)

	return &App{
		config:   c,
		log:      log,
		store:    st,
		security: security,
		entries:  entries,
		streaks:  streaks,
		themes:   themes,
		exporter: export.NewExporter(c.ExportDir),
		reader:   bufio.NewReader(os.Stdin),
	}
}

// Run restores the persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	a.security.RestoreSession(ctx)
	a.Root(ctx)
}
