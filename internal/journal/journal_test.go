package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	noon := time.Date(2024, 3, 15, 12, 30, 45, 123, time.UTC)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, StartOfDay(noon))
	assert.Equal(t, want, StartOfDay(want), "idempotent")
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestMoodCategories(t *testing.T) {
	assert.True(t, MoodInCategory("Happy", CategoryPositive))
	assert.True(t, MoodInCategory("Bored", CategoryNeutral))
	assert.True(t, MoodInCategory("Anxious", CategoryNegative))

	assert.False(t, MoodInCategory("Happy", CategoryNegative))
	assert.False(t, MoodInCategory("Happy", "Unknown"))
	assert.False(t, MoodInCategory("NotAMood", CategoryPositive))
}

func TestAllMoods(t *testing.T) {
	all := AllMoods()
	assert.Len(t, all, 15)
	assert.Contains(t, all, DefaultMood)
}
