package cli

import (
	"context"
	"fmt"

	"ojt-tracker/internal/domain"
	"ojt-tracker/internal/logging"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	entries, err := c.app.api.ListEntries(ctx)
	if err != nil {
		// Store read failures degrade to the last confirmed list; auth and
		// validation errors still surface to the user.
		if !c.errorHandler.IsDatabaseError(err) {
			return c.errorHandler.Handle("list entries", err)
		}
		logging.Errorf("failed to load entries, showing last known list: %v\n", err)
		return c.printEntries(c.app.entries)
	}

	c.app.onEntriesLoaded(entries)
	return c.printEntries(entries)
}

// printEntries prints each entry with its date, the shifts that recorded
// time, and the day's total. Absent shift bounds render as --:--.
func (c *ListCommand) printEntries(entries []*domain.TimeEntry) error {
	if len(entries) == 0 {
		fmt.Println("No entries found")
		return nil
	}

	shiftNames := []string{"morning", "afternoon", "evening"}
	for _, entry := range entries {
		fmt.Printf("%s  %s  (%.1f hours)\n", entry.ID, entry.Date.Format("Mon, 02 Jan 2006"), entry.TotalHours)
		for i, shift := range entry.Shifts() {
			if shift.IsEmpty() {
				continue
			}
			fmt.Printf("  %-9s %s - %s  %.1fh\n", shiftNames[i], formatBound(shift.TimeIn), formatBound(shift.TimeOut), shift.Hours)
		}
	}

	return nil
}

func formatBound(ct *domain.ClockTime) string {
	if ct == nil {
		return "--:--"
	}
	return ct.String()
}
