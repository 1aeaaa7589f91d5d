package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/apavlova/daybook/internal/journal"
	"github.com/apavlova/daybook/internal/logging"
	"github.com/apavlova/daybook/internal/models"
	"github.com/apavlova/daybook/internal/store"
)

// EntrySource is the slice of the entry service the streak engine needs.
type EntrySource interface {
	GetAllEntries(ctx context.Context) ([]models.Entry, error)
}

// StreakService derives writing-streak statistics from the entry set and
// caches the counters per user in the preference store. The counters are
// never authoritative: they can always be rebuilt from entry data.
type StreakService struct {
	entries  EntrySource
	store    *store.Store
	identity Identity
	log      logging.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewStreakService constructs a StreakService over the given entry source.
func NewStreakService(entries EntrySource, st *store.Store, identity Identity, log logging.Logger) *StreakService {
	return &StreakService{
		entries:  entries,
		store:    st,
		identity: identity,
		log:      log,
		now:      time.Now,
	}
}

// UpdateStreak recomputes the current streak from the entry date set and
// persists it, raising the longest-streak counter when exceeded. Storage
// failures are logged and leave the cached counters untouched.
func (s *StreakService) UpdateStreak(ctx context.Context) {
	userID := s.identity.CurrentUserID(ctx)
	if userID == "" {
		return
	}

	dates, err := s.entryDates(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load entries for streak update", "error", err)
		return
	}

	current := s.computeCurrent(dates)

	if err := s.setCounter(ctx, currentStreakKey(userID), current); err != nil {
		s.log.Error(ctx, "failed to persist current streak", "error", err)
		return
	}

	if current > s.getCounter(ctx, longestStreakKey(userID)) {
		if err := s.setCounter(ctx, longestStreakKey(userID), current); err != nil {
			s.log.Error(ctx, "failed to persist longest streak", "error", err)
		}
	}
}

// GetCurrentStreak recomputes the streak and returns the freshly persisted
// value. It is never stale.
func (s *StreakService) GetCurrentStreak(ctx context.Context) int {
	s.UpdateStreak(ctx)
	return s.getCounter(ctx, currentStreakKey(s.identity.CurrentUserID(ctx)))
}

// GetLongestStreak returns the cached longest streak without recomputation.
// It may lag behind the true value until the next UpdateStreak; accepted,
// since the counter only grows and is raised on every recompute.
func (s *StreakService) GetLongestStreak(ctx context.Context) int {
	return s.getCounter(ctx, longestStreakKey(s.identity.CurrentUserID(ctx)))
}

// GetMissedDays lists the calendar days in [today-days, today) with no
// entry, ascending. Today itself is never included. Failures are logged and
// return an empty list.
func (s *StreakService) GetMissedDays(ctx context.Context, days int) []time.Time {
	dateSet, err := s.entryDateSet(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load entries for missed days", "error", err)
		return nil
	}

	today := journal.StartOfDay(s.now())
	var missed []time.Time
	for d := today.AddDate(0, 0, -days); d.Before(today); d = d.AddDate(0, 0, 1) {
		if _, ok := dateSet[d]; !ok {
			missed = append(missed, d)
		}
	}
	return missed
}

// computeCurrent walks the deduplicated date set, sorted descending, from
// today (or yesterday, when today has no entry yet). Each exact hit advances
// the expected-day cursor one day back; dates at or after the cursor that
// don't match are skipped, and the first date strictly before the cursor is
// a real gap that ends the streak.
func (s *StreakService) computeCurrent(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	today := journal.StartOfDay(s.now())
	yesterday := today.AddDate(0, 0, -1)

	hasToday := containsDate(dates, today)
	if !hasToday && !containsDate(dates, yesterday) {
		return 0
	}

	cursor := today
	if !hasToday {
		cursor = yesterday
	}

	streak := 0
	for _, d := range dates {
		if journal.SameDay(d, cursor) {
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		} else if d.Before(cursor) {
			break
		}
	}
	return streak
}

// entryDates returns the deduplicated entry days, sorted descending.
func (s *StreakService) entryDates(ctx context.Context) ([]time.Time, error) {
	set, err := s.entryDateSet(ctx)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates, nil
}

func (s *StreakService) entryDateSet(ctx context.Context) (map[time.Time]struct{}, error) {
	all, err := s.entries.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[time.Time]struct{}, len(all))
	for _, e := range all {
		set[journal.StartOfDay(e.Date)] = struct{}{}
	}
	return set, nil
}

func (s *StreakService) getCounter(ctx context.Context, key string) int {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to access preferences", "error", err)
		return 0
	}

	raw, ok, err := repos.Prefs.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "failed to read streak counter", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		s.log.Warn(ctx, "invalid streak counter value", "key", key, "value", raw)
		return 0
	}
	return n
}

func (s *StreakService) setCounter(ctx context.Context, key string, value int) error {
	repos, err := s.store.Repos(ctx)
	if err != nil {
		return err
	}
	return repos.Prefs.Set(ctx, key, strconv.Itoa(value))
}

func containsDate(dates []time.Time, d time.Time) bool {
	for _, x := range dates {
		if journal.SameDay(x, d) {
			return true
		}
	}
	return false
}

func currentStreakKey(userID string) string {
	return fmt.Sprintf("streak:current:%s", userID)
}

func longestStreakKey(userID string) string {
	return fmt.Sprintf("streak:longest:%s", userID)
}
