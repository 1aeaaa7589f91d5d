package entries

import (
	"context"
	"time"

	"github.com/apavlova/daybook/internal/models"
)

// Repository describes CRUD and query operations over journal entries.
// Every method is scoped to one user; rows belonging to other users are
// invisible, so "not found" and "not owned" are indistinguishable to callers.
type Repository interface {
	// Insert stores a new entry and returns the assigned id. The entry's
	// date must already be normalized to start of day; a second entry on
	// the same (user, day) fails with journal.ErrDuplicateDate.
	Insert(ctx context.Context, entry *models.Entry) (int64, error)

	// Update rewrites all fields of the entry with the given id, provided
	// it belongs to entry.UserID. Returns false when no such row exists.
	Update(ctx context.Context, entry *models.Entry) (bool, error)

	// Delete removes the entry with the given id if it belongs to userID.
	// Returns false when no such row exists.
	Delete(ctx context.Context, id int64, userID string) (bool, error)

	// GetByID returns the user's entry with the given id, or
	// journal.ErrNotFound.
	GetByID(ctx context.Context, id int64, userID string) (*models.Entry, error)

	// GetByDate returns the user's entry on the calendar day of date, or
	// journal.ErrNotFound.
	GetByDate(ctx context.Context, userID string, date time.Time) (*models.Entry, error)

	// GetAllByUser lists the user's entries ordered by date descending.
	GetAllByUser(ctx context.Context, userID string) ([]models.Entry, error)
}
