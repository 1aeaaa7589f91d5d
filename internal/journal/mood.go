package journal

// DefaultMood is assigned to entries created without an explicit mood.
const DefaultMood = "Happy"

// Mood category names accepted by the entry filter.
const (
	CategoryPositive = "Positive"
	CategoryNeutral  = "Neutral"
	CategoryNegative = "Negative"
)

var moodCategories = map[string][]string{
	CategoryPositive: {"Happy", "Excited", "Relaxed", "Grateful", "Confident"},
	CategoryNeutral:  {"Calm", "Thoughtful", "Curious", "Nostalgic", "Bored"},
	CategoryNegative: {"Sad", "Angry", "Stressed", "Lonely", "Anxious"},
}

// MoodsForCategory returns the fixed mood set belonging to the given
// category, or nil for an unknown category name.
func MoodsForCategory(category string) []string {
	return moodCategories[category]
}

// MoodInCategory reports whether mood belongs to the named category.
// Unknown categories match nothing.
func MoodInCategory(mood, category string) bool {
	for _, m := range moodCategories[category] {
		if m == mood {
			return true
		}
	}
	return false
}

// AllMoods returns every known mood, grouped Positive, Neutral, Negative.
func AllMoods() []string {
	out := make([]string, 0, 15)
	for _, c := range []string{CategoryPositive, CategoryNeutral, CategoryNegative} {
		out = append(out, moodCategories[c]...)
	}
	return out
}
