package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if a.security.GetUserID(ctx) != "" {
		s = a.security.GetUsername(ctx)
	}
	if a.security.IsLocked(ctx) {
		if s != "" {
			s += " "
		}
		s += "locked"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to daybook (type 'help' for commands)")

	if a.security.IsLocked(ctx) && a.security.HasSecuritySetup(ctx) {
		a.Unlock(ctx)
	}

	for {
		line := a.readLine(fmt.Sprintf("daybook %s> ", a.getStatus(ctx)))
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if needsUnlock(cmd) && !a.requireUnlocked(ctx) {
			fmt.Println("Unlock first.")
			continue
		}

		switch cmd {
		case "help":
			a.printHelp(ctx)
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "lock":
			a.Lock(ctx)
		case "unlock":
			a.Unlock(ctx)
		case "add":
			a.addEntry(ctx)
		case "list":
			a.listEntries(ctx)
		case "show":
			a.showEntry(ctx, args)
		case "edit":
			a.editEntry(ctx, args)
		case "delete":
			a.deleteEntry(ctx, args)
		case "search":
			a.searchEntries(ctx, args)
		case "filter":
			a.filterEntries(ctx)
		case "tags":
			a.listTags(ctx)
		case "streak":
			a.showStreak(ctx)
		case "missed":
			a.showMissedDays(ctx)
		case "export":
			a.exportEntries(ctx, args)
		case "theme":
			a.toggleTheme(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

// needsUnlock reports whether a command touches journal data and must sit
// behind the lock screen.
func needsUnlock(cmd string) bool {
	switch cmd {
	case "add", "list", "show", "edit", "delete", "search", "filter",
		"tags", "streak", "missed", "export":
		return true
	}
	return false
}

// requireUnlocked offers the unlock prompt when the app is locked and
// reports whether the caller may proceed. Cancelling the prompt keeps the
// app locked.
func (a *App) requireUnlocked(ctx context.Context) bool {
	if !a.security.IsLocked(ctx) {
		return true
	}
	a.Unlock(ctx)
	return !a.security.IsLocked(ctx)
}

func (a *App) printHelp(ctx context.Context) {
	if a.security.GetUserID(ctx) != "" {
		fmt.Println("Available commands: add, list, show <id>, edit <id>, delete <id>, search <text>, filter, tags, streak, missed, export <id|all>, theme, lock, logout, exit")
	} else {
		fmt.Println("Available commands: register, login, exit")
	}
}
