package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) {
	username := a.readLine("Choose a username: ")
	pin := a.readPIN("Choose a PIN (4+ characters): ")

	if !a.security.SetupSecurity(ctx, username, pin) {
		fmt.Println("Registration failed: username taken, or username/PIN invalid.")
		return
	}
	fmt.Printf("Welcome, %s!\n", a.security.GetUsername(ctx))
}

func (a *App) Login(ctx context.Context) {
	username := a.readLine("Username: ")
	pin := a.readPIN("PIN: ")

	if !a.security.Login(ctx, username, pin) {
		fmt.Println("Login failed.")
		return
	}
	a.security.UnlockApp(ctx)
	fmt.Printf("Welcome back, %s!\n", a.security.GetUsername(ctx))
}

func (a *App) Logout(ctx context.Context) {
	a.security.Logout(ctx)
	fmt.Println("Logged out.")
}

func (a *App) Lock(ctx context.Context) {
	a.security.LockApp(ctx)
	fmt.Println("Locked.")
}

// Unlock prompts for the active user's PIN until it validates or the user
// gives up with an empty input.
func (a *App) Unlock(ctx context.Context) {
	if a.security.GetUserID(ctx) == "" {
		fmt.Println("Nobody is logged in; use 'login' instead.")
		return
	}

	for {
		pin := a.readPIN("PIN to unlock (empty to cancel): ")
		if pin == "" {
			return
		}
		if a.security.ValidatePin(ctx, pin) {
			a.security.UnlockApp(ctx)
			fmt.Println("Unlocked.")
			return
		}
		fmt.Println("Wrong PIN.")
	}
}
