package domain

import (
	"math"
	"time"
)

// TimeEntry represents one day's record of up to three shifts in the domain
// model. This is a pure domain model without storage-specific concerns.
// ID and CreatedAt are assigned by the store on creation and immutable after.
type TimeEntry struct {
	ID         string
	OwnerID    string
	Date       time.Time // calendar date; time component is ignored
	Morning    Shift
	Afternoon  Shift
	Evening    Shift
	TotalHours float64
	CreatedAt  time.Time
}

// NewTimeEntry creates a TimeEntry for the given date with TotalHours derived
// from the three shifts. ID, OwnerID and CreatedAt are left for the store.
func NewTimeEntry(date time.Time, morning, afternoon, evening Shift) TimeEntry {
	return TimeEntry{
		Date:       date,
		Morning:    morning,
		Afternoon:  afternoon,
		Evening:    evening,
		TotalHours: morning.Hours + afternoon.Hours + evening.Hours,
	}
}

// Shifts returns the three shift slots in display order.
func (te TimeEntry) Shifts() []Shift {
	return []Shift{te.Morning, te.Afternoon, te.Evening}
}

// HasRecordedTime returns true if at least one shift contributes hours.
// An entry with zero total hours must never reach the store.
func (te TimeEntry) HasRecordedTime() bool {
	return te.TotalHours > 0
}

// IsValid checks if the entry satisfies its invariants: a real date and a
// total equal to the sum of the three shifts' hours.
func (te TimeEntry) IsValid() bool {
	if te.Date.IsZero() {
		return false
	}
	sum := te.Morning.Hours + te.Afternoon.Hours + te.Evening.Hours
	return math.Abs(te.TotalHours-sum) < 1e-9
}
