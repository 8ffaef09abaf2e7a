package domain

import (
	"ojt-tracker/internal/errors"
)

// Progress summarises completion toward the required hour quota. Values are
// full-precision; rounding for display is the presentation layer's choice.
type Progress struct {
	Completed  float64
	Remaining  float64
	Percentage float64
}

// Aggregate sums TotalHours over the given entries and derives remaining
// hours and completion percentage against requiredHours. Order-independent;
// entries sharing a date are summed, not merged. Remaining never goes
// negative and the percentage is capped at 100 when the quota is exceeded.
// A non-positive requiredHours is a configuration error, not a division
// fallback.
func Aggregate(entries []*TimeEntry, requiredHours float64) (Progress, error) {
	if requiredHours <= 0 {
		return Progress{}, errors.NewConfigurationError("required_hours", "must be positive")
	}

	var completed float64
	for _, entry := range entries {
		completed += entry.TotalHours
	}

	remaining := requiredHours - completed
	if remaining < 0 {
		remaining = 0
	}

	percentage := completed / requiredHours * 100
	if percentage > 100 {
		percentage = 100
	}

	return Progress{
		Completed:  completed,
		Remaining:  remaining,
		Percentage: percentage,
	}, nil
}
