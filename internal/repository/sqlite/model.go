package sqlite

import "time"

// TimeEntry represents a stored time entry row. Shift bounds are "HH:MM"
// strings; pointers allow NULL for skipped bounds.
type TimeEntry struct {
	ID             string
	OwnerID        string
	Date           string // ISO date, "2006-01-02"
	MorningIn      *string
	MorningOut     *string
	MorningHours   float64
	AfternoonIn    *string
	AfternoonOut   *string
	AfternoonHours float64
	EveningIn      *string
	EveningOut     *string
	EveningHours   float64
	TotalHours     float64
	CreatedAt      time.Time
}

// UserSettings represents a stored user settings row. One row per owner.
type UserSettings struct {
	ID            string
	OwnerID       string
	Email         string
	DisplayName   string
	RequiredHours int
	UpdatedAt     time.Time
}
