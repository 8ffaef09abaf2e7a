package cli

import (
	"context"
	"fmt"
	"strconv"

	"ojt-tracker/internal/api"
	"ojt-tracker/internal/errors"
)

// QuotaCommand handles the quota command
type QuotaCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewQuotaCommand creates a new quota command handler
func NewQuotaCommand(app *App) *QuotaCommand {
	return &QuotaCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the quota command. Without arguments it prints the current
// hour quota; with one argument it sets a new quota.
func (c *QuotaCommand) Execute(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		return c.showQuota(ctx)
	case 1:
		return c.setQuota(ctx, args[0])
	default:
		return errors.NewInvalidInputError("command", "quota", "usage: ojt quota [hours]")
	}
}

func (c *QuotaCommand) showQuota(ctx context.Context) error {
	required, err := c.api.RequiredHours(ctx)
	if err != nil {
		return c.errorHandler.Handle("load required hours", err)
	}
	fmt.Printf("Required hours: %d\n", required)
	return nil
}

func (c *QuotaCommand) setQuota(ctx context.Context, arg string) error {
	hours, err := strconv.Atoi(arg)
	if err != nil {
		return errors.NewInvalidInputError("hours", arg, "must be a whole number")
	}

	if err := c.api.SetRequiredHours(ctx, hours); err != nil {
		return c.errorHandler.Handle("update required hours", err)
	}

	fmt.Printf("Required hours set to %d\n", hours)
	return nil
}
