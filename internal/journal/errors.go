// Package journal defines shared constants and sentinel errors used across
// the daybook services and repositories. Callers should use errors.Is to
// match these values.
package journal

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Entry write-path errors. These are the only expected failures that
	// surface as errors rather than boolean results.
	ErrNotAuthenticated = errors.New("no user is logged in")
	ErrDuplicateDate    = errors.New("an entry already exists for this date")
)
