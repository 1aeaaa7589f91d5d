package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/apavlova/daybook/internal/journal"
	"github.com/apavlova/daybook/internal/logging"
	"github.com/apavlova/daybook/internal/models"
	"github.com/apavlova/daybook/internal/store"
)

// EntryService owns journal-entry CRUD, search and filtering, scoped to the
// user reported by Identity. Reads with no active user yield empty results;
// writes fail with journal.ErrNotAuthenticated.
type EntryService struct {
	store    *store.Store
	identity Identity
	log      logging.Logger
}

// NewEntryService constructs an EntryService on the shared store.
func NewEntryService(st *store.Store, identity Identity, log logging.Logger) *EntryService {
	return &EntryService{store: st, identity: identity, log: log}
}

// GetAllEntries returns the active user's entries ordered by date descending.
func (s *EntryService) GetAllEntries(ctx context.Context) ([]models.Entry, error) {
	userID := s.identity.CurrentUserID(ctx)
	if userID == "" {
		return nil, nil
	}

	repos, err := s.store.Repos(ctx)
	if err != nil {
		return nil, err
	}
	list, err := repos.Entries.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "entries loaded", "user", userID, "count", len(list))
	return list, nil
}

// GetEntryByID returns the entry if it exists and belongs to the active
// user, nil otherwise. Another user's entry reads the same as a missing one.
func (s *EntryService) GetEntryByID(ctx context.Context, id int64) (*models.Entry, error) {
	userID := s.identity.CurrentUserID(ctx)
	if userID == "" {
		return nil, nil
	}

	repos, err := s.store.Repos(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := repos.Entries.GetByID(ctx, id, userID)
	if errors.Is(err, journal.ErrNotFound) {
		return nil, nil
	}
	return entry, err
}

// GetEntryByDate returns the active user's entry on the calendar day of
// date, nil when there is none. The time of day of date is ignored.
func (s *EntryService) GetEntryByDate(ctx context.Context, date time.Time) (*models.Entry, error) {
	userID := s.identity.CurrentUserID(ctx)
	if userID == "" {
		return nil, nil
	}

	repos, err := s.store.Repos(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := repos.Entries.GetByDate(ctx, userID, date)
	if errors.Is(err, journal.ErrNotFound) {
		return nil, nil
	}
	return entry, err
}

// HasEntryForDate reports whether the active user already wrote on the
// calendar day of date.
func (s *EntryService) HasEntryForDate(ctx context.Context, date time.Time) (bool, error) {
	entry, err := s.GetEntryByDate(ctx, date)
	if err != nil {
		return false, err
	}
	return entry != nil, nil
}

// AddEntry persists a new entry for the active user and returns its id.
// The entry date is normalized to start of day and ownership is assigned to
// the active user. Fails with journal.ErrNotAuthenticated when nobody is
// logged in and journal.ErrDuplicateDate when the user already has an entry
// on that day.
func (s *EntryService) AddEntry(ctx context.Context, entry *models.Entry) (int64, error) {
	userID := s.identity.CurrentUserID(ctx)
	if userID == "" {
		return 0, journal.ErrNotAuthenticated
	}

	repos, err := s.store.Repos(ctx)
	if err != nil {
		return 0, err
	}

	// Pre-check gives a clean domain error; the unique index on
	// (user_id, entry_date) backstops the race between concurrent adds.
	if _, err := repos.Entries.GetByDate(ctx, userID, entry.Date); err == nil {
		return 0, journal.ErrDuplicateDate
	} else if !errors.Is(err, journal.ErrNotFound) {
		return 0, err
	}

	entry.UserID = userID
	entry.Date = journal.StartOfDay(entry.Date)
	if entry.Mood == "" {
		entry.Mood = journal.DefaultMood
	}

	id, err := repos.Entries.Insert(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("failed to add entry: %w", err)
	}
	entry.ID = id

	s.log.Info(ctx, "entry added", "id", id, "date", entry.Date.Format(journal.DayFormat))
	return id, nil
}

// UpdateEntry rewrites an existing entry of the active user. It returns
// false when the entry does not exist or belongs to someone else; ownership
// can never be transferred away from the active user.
func (s *EntryService) UpdateEntry(ctx context.Context, entry *models.Entry) (bool, error) {
	userID := s.identity.CurrentUserID(ctx)
	if userID == "" {
		return false, nil
	}

	repos, err := s.store.Repos(ctx)
	if err != nil {
		return false, err
	}

	entry.UserID = userID
	entry.Date = journal.StartOfDay(entry.Date)

	ok, err := repos.Entries.Update(ctx, entry)
	if err != nil {
		return false, fmt.Errorf("failed to update entry: %w", err)
	}
	return ok, nil
}

// DeleteEntry removes the active user's entry with the given id, reporting
// false when no such entry belongs to them.
func (s *EntryService) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	userID := s.identity.CurrentUserID(ctx)
	if userID == "" {
		return false, nil
	}

	repos, err := s.store.Repos(ctx)
	if err != nil {
		return false, err
	}

	ok, err := repos.Entries.Delete(ctx, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry: %w", err)
	}
	if ok {
		s.log.Info(ctx, "entry deleted", "id", id)
	}
	return ok, nil
}

// GetAllTags returns the distinct tags across the active user's entries,
// alphabetically sorted.
func (s *EntryService) GetAllTags(ctx context.Context) ([]string, error) {
	all, err := s.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, e := range all {
		for _, t := range e.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// SearchEntries returns the active user's entries whose title, content or
// any tag contains the query, case-insensitively. A blank query returns all
// entries. Ordering matches GetAllEntries.
func (s *EntryService) SearchEntries(ctx context.Context, text string) ([]models.Entry, error) {
	all, err := s.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return all, nil
	}

	var result []models.Entry
	for _, e := range all {
		if matchesSearch(&e, text) {
			result = append(result, e)
		}
	}
	return result, nil
}

// FilterEntries applies every non-empty criterion of criteria as an
// intersection over the active user's entries. Dataset sizes are personal
// scale, so filtering composes in memory rather than pushing predicates into
// SQL. Ordering matches GetAllEntries.
func (s *EntryService) FilterEntries(ctx context.Context, criteria models.FilterCriteria) ([]models.Entry, error) {
	all, err := s.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Entry
	for _, e := range all {
		if matchesFilter(&e, criteria) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Close releases the underlying store.
func (s *EntryService) Close() error {
	return s.store.Close()
}

func matchesSearch(e *models.Entry, text string) bool {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Content), needle) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func matchesFilter(e *models.Entry, c models.FilterCriteria) bool {
	if !matchesSearch(e, c.SearchText) {
		return false
	}

	if c.MoodCategory != "" && !journal.MoodInCategory(e.Mood, c.MoodCategory) {
		return false
	}

	if c.SpecificMood != "" && e.Mood != c.SpecificMood {
		return false
	}

	if c.Tag != "" {
		found := false
		for _, t := range e.Tags {
			if t == c.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if c.FromDate != nil && e.Date.Before(journal.StartOfDay(*c.FromDate)) {
		return false
	}
	if c.ToDate != nil && e.Date.After(journal.StartOfDay(*c.ToDate)) {
		return false
	}

	return true
}
