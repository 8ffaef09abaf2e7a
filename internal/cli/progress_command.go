package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	"ojt-tracker/internal/api"
)

// progressBarWidth is the number of cells in the rendered bar.
const progressBarWidth = 40

// ProgressCommand handles the progress command
type ProgressCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewProgressCommand creates a new progress command handler
func NewProgressCommand(app *App) *ProgressCommand {
	return &ProgressCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the progress command
func (c *ProgressCommand) Execute(ctx context.Context, args []string) error {
	progress, err := c.api.Progress(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute progress", err)
	}

	required, err := c.api.RequiredHours(ctx)
	if err != nil {
		return c.errorHandler.Handle("load required hours", err)
	}

	percent := int(math.Round(progress.Percentage))
	fmt.Printf("%s %d%%\n", renderBar(progress.Percentage), percent)
	fmt.Printf("Completed: %.1f hours\n", progress.Completed)
	fmt.Printf("Remaining: %.1f hours\n", progress.Remaining)
	fmt.Printf("Required:  %d hours\n", required)
	return nil
}

// renderBar renders an ASCII bar whose filled cells match the capped
// percentage.
func renderBar(percentage float64) string {
	filled := int(math.Round(percentage / 100 * progressBarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressBarWidth-filled) + "]"
}
