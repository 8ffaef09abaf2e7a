package validation

import (
	"ojt-tracker/internal/domain"
)

// TimeEntryValidator provides validation for TimeEntry-related operations
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a new time entry validator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{
		validator: NewValidator(),
	}
}

// ValidateEntryForCreation validates a time entry before it reaches the
// store. A missing date or an entry whose three shifts are all empty is
// rejected here, never persisted.
func (tev *TimeEntryValidator) ValidateEntryForCreation(entry domain.TimeEntry) error {
	validationError := NewValidationError()

	if entry.Date.IsZero() {
		validationError.AddRequiredError("date")
	} else if !tev.validator.IsReasonableDate(entry.Date) {
		validationError.AddInvalidValueError("date", entry.Date, "must be within reasonable date range")
	}

	if !entry.HasRecordedTime() {
		validationError.AddInvalidValueError("shifts", entry.TotalHours, "at least one time shift is required")
	}

	if !entry.IsValid() {
		validationError.AddInvalidValueError("total_hours", entry.TotalHours, "must equal the sum of shift hours")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateShiftInput validates a raw time-in/time-out pair for one shift.
// Empty strings are allowed (a skipped bound); non-empty values must be
// "HH:MM" wall-clock times.
func (tev *TimeEntryValidator) ValidateShiftInput(shiftName, timeIn, timeOut string) error {
	validationError := NewValidationError()

	if timeIn != "" && !tev.validator.IsValidClockTime(timeIn) {
		validationError.AddInvalidFormatError(shiftName+"_time_in", timeIn, "HH:MM")
	}
	if timeOut != "" && !tev.validator.IsValidClockTime(timeOut) {
		validationError.AddInvalidFormatError(shiftName+"_time_out", timeOut, "HH:MM")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryID validates a time entry identifier
func (tev *TimeEntryValidator) ValidateEntryID(id string) error {
	if !tev.validator.IsValidEntryID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry_id", id, "must not be empty")
		return validationError
	}
	return nil
}

// ValidateOwnerID validates an owner identifier
func (tev *TimeEntryValidator) ValidateOwnerID(id string) error {
	if !tev.validator.IsValidOwnerID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("owner_id", id, "must not be empty")
		return validationError
	}
	return nil
}
