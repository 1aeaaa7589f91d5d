package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/apavlova/daybook/internal/logging"
	"github.com/apavlova/daybook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newSecurity(t *testing.T) *SecurityService {
	t.Helper()
	st := store.New(":memory:")
	t.Cleanup(func() { _ = st.Close() })
	return NewSecurityService(st, testLogger())
}

func TestSetupSecurity_Validation(t *testing.T) {
	s := newSecurity(t)
	ctx := context.Background()

	assert.False(t, s.SetupSecurity(ctx, "", "1234"), "blank username")
	assert.False(t, s.SetupSecurity(ctx, "alice", ""), "blank pin")
	assert.False(t, s.SetupSecurity(ctx, "alice", "123"), "short pin")
	assert.False(t, s.HasSecuritySetup(ctx))
}

func TestSetupSecurity_RegistersAndUnlocks(t *testing.T) {
	s := newSecurity(t)
	ctx := context.Background()

	require.True(t, s.SetupSecurity(ctx, "alice", "1234"))

	assert.True(t, s.HasSecuritySetup(ctx))
	assert.Equal(t, "alice", s.GetUsername(ctx))
	assert.NotEmpty(t, s.GetUserID(ctx))
	assert.False(t, s.IsLocked(ctx))
}

func TestSetupSecurity_DuplicateUsernameCaseInsensitive(t *testing.T) {
	s := newSecurity(t)
	ctx := context.Background()

	require.True(t, s.SetupSecurity(ctx, "alice", "1234"))
	assert.False(t, s.SetupSecurity(ctx, "alice", "5678"))
	assert.False(t, s.SetupSecurity(ctx, "  ALICE  ", "5678"))

	// a different name is fine, and each user gets a distinct id
	aliceID := s.GetUserID(ctx)
	require.True(t, s.SetupSecurity(ctx, "bob", "9999"))
	assert.NotEqual(t, aliceID, s.GetUserID(ctx))
}

func TestLogin(t *testing.T) {
	s := newSecurity(t)
	ctx := context.Background()

	require.True(t, s.SetupSecurity(ctx, "alice", "1234"))
	aliceID := s.GetUserID(ctx)
	s.Logout(ctx)

	assert.False(t, s.Login(ctx, "alice", "9999"), "wrong pin")
	assert.False(t, s.Login(ctx, "nobody", "1234"), "unknown user")

	require.True(t, s.Login(ctx, "alice", "1234"))
	assert.Equal(t, aliceID, s.GetUserID(ctx))
	assert.Equal(t, "alice", s.GetUsername(ctx))
}

func TestLogin_DoesNotChangeLockState(t *testing.T) {
	s := newSecurity(t)
	ctx := context.Background()

	require.True(t, s.SetupSecurity(ctx, "alice", "1234"))
	s.LockApp(ctx)

	require.True(t, s.Login(ctx, "alice", "1234"))
	assert.True(t, s.IsLocked(ctx))
}

func TestValidatePin(t *testing.T) {
	s := newSecurity(t)
	ctx := context.Background()

	assert.False(t, s.ValidatePin(ctx, "1234"), "no session")

	require.True(t, s.SetupSecurity(ctx, "alice", "1234"))
	assert.True(t, s.ValidatePin(ctx, "1234"))
	assert.False(t, s.ValidatePin(ctx, "4321"))
}

func TestSessionDefaults(t *testing.T) {
	s := newSecurity(t)
	ctx := context.Background()

	assert.Equal(t, "User", s.GetUsername(ctx))
	assert.Equal(t, "", s.GetUserID(ctx))
}

func TestIsLocked_NoSetupMeansUnlocked(t *testing.T) {
	s := newSecurity(t)
	assert.False(t, s.IsLocked(context.Background()))
}

func TestLockUnlockLogout(t *testing.T) {
	s := newSecurity(t)
	ctx := context.Background()

	require.True(t, s.SetupSecurity(ctx, "alice", "1234"))
	assert.False(t, s.IsLocked(ctx))

	s.LockApp(ctx)
	assert.True(t, s.IsLocked(ctx))

	s.UnlockApp(ctx)
	assert.False(t, s.IsLocked(ctx))

	s.Logout(ctx)
	assert.True(t, s.IsLocked(ctx))
	assert.Equal(t, "User", s.GetUsername(ctx))
	assert.Equal(t, "", s.GetUserID(ctx))
}

func TestIsLocked_StorageFailureReadsLocked(t *testing.T) {
	st := store.New(":memory:")
	s := NewSecurityService(st, testLogger())
	ctx := context.Background()

	require.True(t, s.SetupSecurity(ctx, "alice", "1234"))
	s.LockApp(ctx)
	require.True(t, s.IsLocked(ctx))

	// When the backing store goes away the lock check must fail closed,
	// even though the user registry can no longer be read.
	require.NoError(t, st.Close())
	assert.True(t, s.IsLocked(ctx))
}

func TestRestoreSession(t *testing.T) {
	st := store.New(":memory:")
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	s1 := NewSecurityService(st, testLogger())
	require.True(t, s1.SetupSecurity(ctx, "alice", "1234"))
	id := s1.GetUserID(ctx)

	// a fresh service over the same store picks the session up from the
	// persisted mirror
	s2 := NewSecurityService(st, testLogger())
	s2.RestoreSession(ctx)
	assert.Equal(t, "alice", s2.GetUsername(ctx))
	assert.Equal(t, id, s2.GetUserID(ctx))
}

func TestPinIsStoredHashed(t *testing.T) {
	st := store.New(":memory:")
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	s := NewSecurityService(st, testLogger())
	require.True(t, s.SetupSecurity(ctx, "alice", "1234"))

	repos, err := st.Repos(ctx)
	require.NoError(t, err)
	raw, ok, err := repos.Prefs.Get(ctx, prefUserRegistry)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "1234")
}
