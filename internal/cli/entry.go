package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/apavlova/daybook/internal/export"
	"github.com/apavlova/daybook/internal/journal"
	"github.com/apavlova/daybook/internal/models"
)

func (a *App) addEntry(ctx context.Context) {
	dateArg := a.readLine("Date (YYYY-MM-DD, empty for today): ")
	date, err := parseDay(dateArg)
	if err != nil {
		fmt.Println(err)
		return
	}

	entry := &models.Entry{
		Date:    date,
		Title:   a.readLine("Title: "),
		Mood:    a.readLine(fmt.Sprintf("Mood (empty for %s): ", journal.DefaultMood)),
		Content: a.readLine("Content: "),
		Tags:    parseTags(a.readLine("Tags (comma-separated): ")),
	}

	id, err := a.entries.AddEntry(ctx, entry)
	switch {
	case errors.Is(err, journal.ErrNotAuthenticated):
		fmt.Println("Log in first.")
	case errors.Is(err, journal.ErrDuplicateDate):
		fmt.Println("You already wrote an entry for that day.")
	case err != nil:
		fmt.Printf("Failed to add entry: %v\n", err)
	default:
		fmt.Printf("Saved entry %d.\n", id)
		a.streaks.UpdateStreak(ctx)
	}
}

func (a *App) listEntries(ctx context.Context) {
	all, err := a.entries.GetAllEntries(ctx)
	if err != nil {
		fmt.Printf("Failed to list entries: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No entries yet.")
		return
	}
	for _, e := range all {
		printEntryLine(&e)
	}
}

func (a *App) showEntry(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: show <id>")
		return
	}

	entry, err := a.entries.GetEntryByID(ctx, id)
	if err != nil {
		fmt.Printf("Failed to load entry: %v\n", err)
		return
	}
	if entry == nil {
		fmt.Println("No such entry.")
		return
	}

	fmt.Printf("#%d  %s  [%s]\n", entry.ID, entry.Date.Format(journal.DayFormat), entry.Mood)
	fmt.Println(entry.Title)
	if len(entry.Tags) > 0 {
		fmt.Println("Tags: " + strings.Join(entry.Tags, ", "))
	}
	fmt.Println(export.StripHTML(entry.Content))
}

func (a *App) editEntry(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: edit <id>")
		return
	}

	entry, err := a.entries.GetEntryByID(ctx, id)
	if err != nil {
		fmt.Printf("Failed to load entry: %v\n", err)
		return
	}
	if entry == nil {
		fmt.Println("No such entry.")
		return
	}

	// Empty input keeps the current value.
	if v := a.readLine(fmt.Sprintf("Title [%s]: ", entry.Title)); v != "" {
		entry.Title = v
	}
	if v := a.readLine(fmt.Sprintf("Mood [%s]: ", entry.Mood)); v != "" {
		entry.Mood = v
	}
	if v := a.readLine("Content (empty to keep): "); v != "" {
		entry.Content = v
	}
	if v := a.readLine(fmt.Sprintf("Tags [%s]: ", strings.Join(entry.Tags, ", "))); v != "" {
		entry.Tags = parseTags(v)
	}

	ok, err = a.entries.UpdateEntry(ctx, entry)
	if err != nil {
		fmt.Printf("Failed to update entry: %v\n", err)
		return
	}
	if !ok {
		fmt.Println("No such entry.")
		return
	}
	fmt.Println("Updated.")
}

func (a *App) deleteEntry(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: delete <id>")
		return
	}

	ok, err := a.entries.DeleteEntry(ctx, id)
	if err != nil {
		fmt.Printf("Failed to delete entry: %v\n", err)
		return
	}
	if !ok {
		fmt.Println("No such entry.")
		return
	}
	fmt.Println("Deleted.")
	a.streaks.UpdateStreak(ctx)
}

func (a *App) searchEntries(ctx context.Context, args []string) {
	found, err := a.entries.SearchEntries(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Printf("Search failed: %v\n", err)
		return
	}
	if len(found) == 0 {
		fmt.Println("Nothing found.")
		return
	}
	for _, e := range found {
		printEntryLine(&e)
	}
}

func (a *App) filterEntries(ctx context.Context) {
	criteria := models.FilterCriteria{
		SearchText:   a.readLine("Text (empty to skip): "),
		MoodCategory: a.readLine("Mood category Positive/Neutral/Negative (empty to skip): "),
	}
	if moods := journal.MoodsForCategory(criteria.MoodCategory); len(moods) > 0 {
		fmt.Println("  covers: " + strings.Join(moods, ", "))
	}
	criteria.SpecificMood = a.readLine("Specific mood (empty to skip): ")
	criteria.Tag = a.readLine("Tag (empty to skip): ")

	if v := a.readLine("From date YYYY-MM-DD (empty to skip): "); v != "" {
		d, err := parseDay(v)
		if err != nil {
			fmt.Println(err)
			return
		}
		criteria.FromDate = &d
	}
	if v := a.readLine("To date YYYY-MM-DD (empty to skip): "); v != "" {
		d, err := parseDay(v)
		if err != nil {
			fmt.Println(err)
			return
		}
		criteria.ToDate = &d
	}

	found, err := a.entries.FilterEntries(ctx, criteria)
	if err != nil {
		fmt.Printf("Filter failed: %v\n", err)
		return
	}
	if len(found) == 0 {
		fmt.Println("Nothing found.")
		return
	}
	for _, e := range found {
		printEntryLine(&e)
	}
}

func (a *App) listTags(ctx context.Context) {
	tags, err := a.entries.GetAllTags(ctx)
	if err != nil {
		fmt.Printf("Failed to list tags: %v\n", err)
		return
	}
	if len(tags) == 0 {
		fmt.Println("No tags yet.")
		return
	}
	fmt.Println(strings.Join(tags, ", "))
}

func printEntryLine(e *models.Entry) {
	tags := ""
	if len(e.Tags) > 0 {
		tags = "  #" + strings.Join(e.Tags, " #")
	}
	fmt.Printf("%4d  %s  [%-10s]  %s%s\n", e.ID, e.Date.Format(journal.DayFormat), e.Mood, e.Title, tags)
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
