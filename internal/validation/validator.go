package validation

import (
	"regexp"
	"strings"
	"time"
)

// Validator provides common validation utilities
type Validator struct {
	clockTimeRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		clockTimeRegex: regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidClockTime checks if a string is a valid "HH:MM" wall-clock time
func (v *Validator) IsValidClockTime(s string) bool {
	return v.clockTimeRegex.MatchString(s)
}

// IsValidOwnerID checks if an owner identifier is usable (non-empty)
func (v *Validator) IsValidOwnerID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// IsValidEntryID checks if an entry identifier is usable (non-empty)
func (v *Validator) IsValidEntryID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// IsValidRequiredHours checks if an hour quota is a positive value
func (v *Validator) IsValidRequiredHours(hours int) bool {
	return hours > 0
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
