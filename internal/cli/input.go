package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apavlova/daybook/internal/journal"
	"golang.org/x/term"
)

// readLine prompts and returns one trimmed line of input.
func (a *App) readLine(prompt string) string {
	fmt.Print(prompt)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// readPIN prompts for a PIN without echoing it. When stdin is not a
// terminal (tests, pipes) it falls back to a plain line read.
func (a *App) readPIN(prompt string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.readLine(prompt)
	}

	fmt.Print(prompt)
	pin, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(pin))
}

// parseTags splits a comma-separated tag list, trimming blanks.
func parseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseDay parses a YYYY-MM-DD argument; an empty string means today.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return journal.StartOfDay(time.Now()), nil
	}
	t, err := time.ParseInLocation(journal.DayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
