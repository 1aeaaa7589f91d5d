package prefs

import "context"

// Repository is a durable string key-value store used for credentials,
// session mirrors, streak counters and UI preferences.
type Repository interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
