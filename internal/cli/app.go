package cli

import (
	"context"
	"fmt"

	"ojt-tracker/internal/api"
	"ojt-tracker/internal/domain"
	"ojt-tracker/internal/session"
)

// App represents the main CLI application. It owns the process-wide state
// (current identity, loaded entries); mutation is confined to the transition
// methods below rather than assigned freely by command handlers.
type App struct {
	api      api.API
	sessions session.Provider
	registry *CommandRegistry

	currentIdentity *session.Identity
	entries         []*domain.TimeEntry
}

// NewApp creates a new CLI application instance with dependency injection.
// The app subscribes to identity transitions so that signing out always
// clears the in-memory entry list.
func NewApp(apiInstance api.API, sessions session.Provider) *App {
	app := &App{
		api:             apiInstance,
		sessions:        sessions,
		currentIdentity: sessions.Current(),
	}
	app.registry = NewCommandRegistry(app)
	sessions.Subscribe(func(identity *session.Identity) {
		if identity != nil {
			app.onLogin(identity)
		} else {
			app.onLogout()
		}
	})
	return app
}

// onLogin records the new identity.
func (a *App) onLogin(identity *session.Identity) {
	a.currentIdentity = identity
}

// onLogout clears the identity and all in-memory entries.
func (a *App) onLogout() {
	a.currentIdentity = nil
	a.entries = nil
}

// onEntriesLoaded replaces the in-memory entry list after a confirmed read.
func (a *App) onEntriesLoaded(entries []*domain.TimeEntry) {
	a.entries = entries
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}
