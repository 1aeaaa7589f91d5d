package cli

import (
	"context"
	"fmt"

	"github.com/apavlova/daybook/internal/journal"
)

func (a *App) showStreak(ctx context.Context) {
	current := a.streaks.GetCurrentStreak(ctx)
	longest := a.streaks.GetLongestStreak(ctx)
	fmt.Printf("Current streak: %d day(s). Longest: %d day(s).\n", current, longest)
}

func (a *App) showMissedDays(ctx context.Context) {
	missed := a.streaks.GetMissedDays(ctx, 30)
	if len(missed) == 0 {
		fmt.Println("No missed days in the last 30 days. Keep it up!")
		return
	}
	fmt.Printf("Missed %d day(s) in the last 30 days:\n", len(missed))
	for _, d := range missed {
		fmt.Println("  " + d.Format(journal.DayFormat))
	}
}

func (a *App) toggleTheme(ctx context.Context) {
	fmt.Printf("Theme switched to %s.\n", a.themes.ToggleTheme(ctx))
}
