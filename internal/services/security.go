// Package services contains the application services of daybook: credential
// and session management, entry CRUD/search, streak statistics, and theme
// preference.
package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"

	"github.com/apavlova/daybook/internal/dbx"
	"github.com/apavlova/daybook/internal/logging"
	"github.com/apavlova/daybook/internal/models"
	"github.com/apavlova/daybook/internal/repositories/prefs"
	"github.com/apavlova/daybook/internal/store"
	"github.com/google/uuid"
)

// Identity exposes the active user to the entry and streak services. An
// empty id means nobody is logged in.
type Identity interface {
	CurrentUserID(ctx context.Context) string
}

// Preference keys owned by the security service.
const (
	prefUserRegistry    = "user_registry"
	prefSessionUsername = "session_username"
	prefSessionUserID   = "session_user_id"
	prefLockState       = "app_lock_state"
)

const (
	lockStateLocked   = "locked"
	lockStateUnlocked = "unlocked"
)

// minPINLength is the shortest PIN accepted at registration.
const minPINLength = 4

// SecurityService handles user registration, PIN authentication, and the
// session/lock state of the app.
//
// Expected failures (bad input, unknown user, wrong PIN) are reported as
// false returns, never as errors; storage failures are logged and degraded
// to the safe side (lock checks fall back to locked).
type SecurityService struct {
	store *store.Store
	log   logging.Logger

	mu      sync.Mutex
	session models.Session
}

// NewSecurityService constructs a SecurityService on the shared store.
func NewSecurityService(st *store.Store, log logging.Logger) *SecurityService {
	return &SecurityService{store: st, log: log}
}

// HasSecuritySetup reports whether at least one user is registered.
func (s *SecurityService) HasSecuritySetup(ctx context.Context) bool {
	users, err := s.loadRegistry(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load user registry", "error", err)
		return false
	}
	return len(users) > 0
}

// SetupSecurity registers a new user and logs them in. It returns false when
// the username or PIN is blank, the PIN is shorter than four characters, or
// the username is already taken (case-insensitive). On success the session
// is set to the new user and the app is unlocked.
func (s *SecurityService) SetupSecurity(ctx context.Context, username, pin string) bool {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(pin) == "" {
		return false
	}
	if len(pin) < minPINLength {
		return false
	}

	users, err := s.loadRegistry(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load user registry", "error", err)
		return false
	}

	key := registryKey(username)
	if _, exists := users[key]; exists {
		return false
	}

	user := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		HashedPIN: hashPin(pin),
	}
	users[key] = user

	if err := s.saveRegistry(ctx, users); err != nil {
		s.log.Error(ctx, "failed to save user registry", "error", err)
		return false
	}

	s.setSession(ctx, user)
	s.setLockState(ctx, lockStateUnlocked)
	s.log.Info(ctx, "user registered", "user", user.ID)
	return true
}

// Login authenticates a registered user and sets the session to them. The
// lock state is left untouched.
func (s *SecurityService) Login(ctx context.Context, username, pin string) bool {
	users, err := s.loadRegistry(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load user registry", "error", err)
		return false
	}

	user, ok := users[registryKey(username)]
	if !ok {
		return false
	}
	if !pinMatches(pin, user.HashedPIN) {
		return false
	}

	s.setSession(ctx, user)
	return true
}

// ValidatePin checks the PIN against the currently logged-in user's stored
// hash. It fails when no session is active.
func (s *SecurityService) ValidatePin(ctx context.Context, pin string) bool {
	userID := s.GetUserID(ctx)
	if userID == "" {
		return false
	}

	users, err := s.loadRegistry(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load user registry", "error", err)
		return false
	}

	for _, user := range users {
		if user.ID == userID {
			return pinMatches(pin, user.HashedPIN)
		}
	}
	return false
}

// GetUsername returns the session username, falling back to the persisted
// mirror and finally to the "User" placeholder. It never fails.
func (s *SecurityService) GetUsername(ctx context.Context) string {
	s.mu.Lock()
	name := s.session.Username
	s.mu.Unlock()
	if name != "" {
		return name
	}

	if v, ok := s.getPref(ctx, prefSessionUsername); ok && v != "" {
		return v
	}
	return "User"
}

// GetUserID returns the session user id, falling back to the persisted
// mirror and finally to the empty string. It never fails.
func (s *SecurityService) GetUserID(ctx context.Context) string {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()
	if sess.Active() {
		return sess.UserID
	}

	v, _ := s.getPref(ctx, prefSessionUserID)
	return v
}

// CurrentUserID implements Identity.
func (s *SecurityService) CurrentUserID(ctx context.Context) string {
	return s.GetUserID(ctx)
}

// IsLocked reports the persisted lock flag. With no users registered the app
// is unauthenticated by design and never locked; a storage failure reads as
// locked.
func (s *SecurityService) IsLocked(ctx context.Context) bool {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to access preferences", "error", err)
		return true
	}

	// "No users" and "couldn't load users" must not read the same: an
	// empty registry means nothing to protect, a load failure means we
	// cannot tell and must stay locked.
	users, err := s.loadRegistry(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load user registry", "error", err)
		return true
	}
	if len(users) == 0 {
		return false
	}

	state, ok, err := repos.Prefs.Get(ctx, prefLockState)
	if err != nil {
		s.log.Error(ctx, "failed to read lock state", "error", err)
		return true
	}
	if !ok {
		return true
	}
	return state == lockStateLocked
}

// LockApp sets the lock flag. Failures are logged and swallowed.
func (s *SecurityService) LockApp(ctx context.Context) {
	s.setLockState(ctx, lockStateLocked)
}

// UnlockApp clears the lock flag. Failures are logged and swallowed.
func (s *SecurityService) UnlockApp(ctx context.Context) {
	s.setLockState(ctx, lockStateUnlocked)
}

// Logout clears the session and forces the lock flag to locked.
func (s *SecurityService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	repos, err := s.store.Repos(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to access preferences", "error", err)
		return
	}
	if err := repos.Prefs.Delete(ctx, prefSessionUsername); err != nil {
		s.log.Error(ctx, "failed to clear session username", "error", err)
	}
	if err := repos.Prefs.Delete(ctx, prefSessionUserID); err != nil {
		s.log.Error(ctx, "failed to clear session user id", "error", err)
	}
	s.setLockState(ctx, lockStateLocked)
}

// RestoreSession reloads the persisted session mirror into memory, so a
// restarted process remembers who was logged in (still locked until the PIN
// is validated).
func (s *SecurityService) RestoreSession(ctx context.Context) {
	username, _ := s.getPref(ctx, prefSessionUsername)
	userID, _ := s.getPref(ctx, prefSessionUserID)

	s.mu.Lock()
	s.session = models.Session{UserID: userID, Username: username}
	s.mu.Unlock()
}

// setSession records the new identity in memory and mirrors it to the
// preference store in a single transaction, so a restart never sees half a
// session.
func (s *SecurityService) setSession(ctx context.Context, user models.User) {
	s.mu.Lock()
	s.session = models.Session{UserID: user.ID, Username: user.Username}
	s.mu.Unlock()

	db, err := s.store.DB(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to access preferences", "error", err)
		return
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := prefs.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, prefSessionUsername, user.Username); err != nil {
			return err
		}
		return repo.Set(ctx, prefSessionUserID, user.ID)
	})
	if err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
	}
}

func (s *SecurityService) setLockState(ctx context.Context, state string) {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to access preferences", "error", err)
		return
	}
	if err := repos.Prefs.Set(ctx, prefLockState, state); err != nil {
		s.log.Error(ctx, "failed to persist lock state", "error", err)
	}
}

func (s *SecurityService) getPref(ctx context.Context, key string) (string, bool) {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to access preferences", "error", err)
		return "", false
	}
	v, ok, err := repos.Prefs.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "failed to read preference", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

// loadRegistry reads the JSON user registry keyed by normalized username.
// A missing registry is an empty one.
func (s *SecurityService) loadRegistry(ctx context.Context) (map[string]models.User, error) {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		return nil, err
	}

	raw, ok, err := repos.Prefs.Get(ctx, prefUserRegistry)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return map[string]models.User{}, nil
	}

	var users map[string]models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SecurityService) saveRegistry(ctx context.Context, users map[string]models.User) error {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return repos.Prefs.Set(ctx, prefUserRegistry, string(raw))
}

func registryKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// hashPin digests the PIN's UTF-8 bytes with SHA-256 and encodes the result
// as base64. The raw PIN is never stored or logged.
func hashPin(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func pinMatches(pin, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(hashPin(pin)), []byte(storedHash)) == 1
}
