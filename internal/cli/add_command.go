package cli

import (
	"context"
	"fmt"
	"strings"

	"ojt-tracker/internal/api"
	"ojt-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: ojt add <date> [morning=IN-OUT] [afternoon=IN-OUT] [evening=IN-OUT]")
	}

	input, err := c.parseInput(args)
	if err != nil {
		return err
	}

	entry, err := c.api.AddEntry(ctx, *input)
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	fmt.Printf("Added entry for %s: %.1f hours\n", entry.Date.Format("2006-01-02"), entry.TotalHours)
	return nil
}

// parseInput parses "add <date> [shift=IN-OUT]..." arguments. Either side of
// a shift pair may be left empty, as in "morning=08:00-" for an open shift.
func (c *AddCommand) parseInput(args []string) (*api.EntryInput, error) {
	input := &api.EntryInput{Date: args[0]}

	for _, arg := range args[1:] {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, errors.NewInvalidInputError("shift", arg, "expected <shift>=IN-OUT")
		}

		timeIn, timeOut, found := strings.Cut(value, "-")
		if !found {
			return nil, errors.NewInvalidInputError(name, value, "expected IN-OUT, e.g. 08:00-12:00")
		}

		switch name {
		case "morning":
			input.MorningIn, input.MorningOut = timeIn, timeOut
		case "afternoon":
			input.AfternoonIn, input.AfternoonOut = timeIn, timeOut
		case "evening":
			input.EveningIn, input.EveningOut = timeIn, timeOut
		default:
			return nil, errors.NewInvalidInputError("shift", name, "must be morning, afternoon or evening")
		}
	}

	return input, nil
}
