package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/apavlova/daybook/internal/logging"
	"github.com/apavlova/daybook/internal/services"
	"github.com/apavlova/daybook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds an App over an in-memory store with scripted input.
func newTestApp(t *testing.T, input string) *App {
	t.Helper()
	st := store.New(":memory:")
	t.Cleanup(func() { _ = st.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &App{
		security: services.NewSecurityService(st, log),
		reader:   bufio.NewReader(strings.NewReader(input)),
	}
}

func TestNeedsUnlock(t *testing.T) {
	assert.True(t, needsUnlock("add"))
	assert.True(t, needsUnlock("list"))
	assert.True(t, needsUnlock("search"))
	assert.True(t, needsUnlock("export"))

	assert.False(t, needsUnlock("login"))
	assert.False(t, needsUnlock("register"))
	assert.False(t, needsUnlock("unlock"))
	assert.False(t, needsUnlock("help"))
}

func TestRequireUnlocked(t *testing.T) {
	ctx := context.Background()

	t.Run("unlocked app passes through", func(t *testing.T) {
		a := newTestApp(t, "")
		require.True(t, a.security.SetupSecurity(ctx, "alice", "1234"))
		assert.True(t, a.requireUnlocked(ctx))
	})

	t.Run("cancelled prompt stays locked", func(t *testing.T) {
		a := newTestApp(t, "\n")
		require.True(t, a.security.SetupSecurity(ctx, "alice", "1234"))
		a.security.LockApp(ctx)

		assert.False(t, a.requireUnlocked(ctx))
		assert.True(t, a.security.IsLocked(ctx))
	})

	t.Run("correct pin unlocks", func(t *testing.T) {
		a := newTestApp(t, "9999\n1234\n")
		require.True(t, a.security.SetupSecurity(ctx, "alice", "1234"))
		a.security.LockApp(ctx)

		assert.True(t, a.requireUnlocked(ctx))
		assert.False(t, a.security.IsLocked(ctx))
	})
}
