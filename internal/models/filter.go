package models

import "time"

// FilterCriteria describes an entry filter. Zero-valued fields are skipped;
// all non-empty criteria are applied together as an intersection.
type FilterCriteria struct {
	// SearchText is matched case-insensitively against title, content and
	// tags, with the same semantics as a plain search.
	SearchText string

	// MoodCategory restricts results to one of the Positive/Neutral/Negative
	// mood groups.
	MoodCategory string

	// SpecificMood restricts results to entries with exactly this mood.
	SpecificMood string

	// Tag restricts results to entries carrying exactly this tag.
	Tag string

	// FromDate keeps entries dated on or after its calendar day.
	FromDate *time.Time

	// ToDate keeps entries dated on or before its calendar day.
	ToDate *time.Time
}
