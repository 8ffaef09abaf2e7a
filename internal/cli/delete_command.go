package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"ojt-tracker/internal/api"
	"ojt-tracker/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	input        io.Reader
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		input:        os.Stdin,
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: ojt delete <id>")
	}
	id := args[0]

	fmt.Printf("Delete entry %s? This cannot be undone. [y/N]: ", id)
	if !c.confirm() {
		fmt.Println("Delete cancelled.")
		return nil
	}

	if err := c.api.DeleteEntry(ctx, id); err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	fmt.Printf("Deleted entry %s\n", id)
	return nil
}

// confirm reads one line and accepts only an explicit yes.
func (c *DeleteCommand) confirm() bool {
	reader := bufio.NewReader(c.input)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
