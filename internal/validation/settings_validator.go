package validation

import (
	"ojt-tracker/internal/domain"
)

// SettingsValidator provides validation for UserSettings operations
type SettingsValidator struct {
	validator *Validator
}

// NewSettingsValidator creates a new settings validator
func NewSettingsValidator() *SettingsValidator {
	return &SettingsValidator{
		validator: NewValidator(),
	}
}

// ValidateRequiredHours validates an hour quota value
func (sv *SettingsValidator) ValidateRequiredHours(hours int) error {
	if !sv.validator.IsValidRequiredHours(hours) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("required_hours", hours, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateSettings validates a settings record before it is written
func (sv *SettingsValidator) ValidateSettings(settings domain.UserSettings) error {
	validationError := NewValidationError()

	if !sv.validator.IsValidOwnerID(settings.OwnerID) {
		validationError.AddRequiredError("owner_id")
	}
	if !sv.validator.IsValidRequiredHours(settings.RequiredHours) {
		validationError.AddInvalidValueError("required_hours", settings.RequiredHours, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
