package journal

import "time"

// DayFormat is the canonical storage encoding of an entry date.
const DayFormat = "2006-01-02"

// StartOfDay normalizes t to midnight UTC of its calendar day. All entry
// dates are stored in this form, so two timestamps on the same day always
// compare equal after normalization.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
