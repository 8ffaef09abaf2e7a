package cli

import (
	"context"
	"fmt"

	"ojt-tracker/internal/session"
)

// LoginCommand handles the login command
type LoginCommand struct {
	sessions     session.Provider
	errorHandler *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		sessions:     app.sessions,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	if current := c.sessions.Current(); current != nil {
		fmt.Printf("Already signed in as %s (%s)\n", current.DisplayName, current.Email)
		return nil
	}

	fmt.Println("Opening your browser to sign in...")
	identity, err := c.sessions.SignIn(ctx)
	if err != nil {
		return c.errorHandler.Handle("sign in", err)
	}

	fmt.Printf("Signed in as %s (%s)\n", identity.DisplayName, identity.Email)
	return nil
}
