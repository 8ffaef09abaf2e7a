package cli

import (
	"context"
	"fmt"

	"ojt-tracker/internal/session"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	sessions     session.Provider
	errorHandler *ErrorHandler
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		sessions:     app.sessions,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the logout command
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	if c.sessions.Current() == nil {
		fmt.Println("Not signed in")
		return nil
	}

	if err := c.sessions.SignOut(ctx); err != nil {
		return c.errorHandler.Handle("sign out", err)
	}

	fmt.Println("Signed out")
	return nil
}
