// Package models defines the data types persisted and exchanged by the
// daybook services.
package models

import "time"

// Entry is a single dated journal record owned by one user.
//
// Date is always normalized to midnight UTC before persisting; together with
// UserID it is unique (at most one entry per user per calendar day).
type Entry struct {
	// ID is assigned by the store on insert and never reused.
	ID int64

	// UserID identifies the owning user. Never empty for a persisted entry.
	UserID string

	// Title is free text and may be empty.
	Title string

	// Date is the calendar day of the entry, normalized to start of day.
	Date time.Time

	// Mood is one of the fixed mood set (see journal.AllMoods).
	Mood string

	// Content holds rich-text markup. The store treats it as opaque.
	Content string

	// Tags is an ordered list of non-empty trimmed strings. The repository
	// serializes it as a delimited column; it does not deduplicate.
	Tags []string
}
