package domain

import (
	"time"
)

// DefaultRequiredHours is the quota used when a user has no stored settings.
const DefaultRequiredHours = 486

// UserSettings holds the per-user hour quota alongside the profile fields
// captured at creation time. One record exists per owner; quota changes are
// idempotent upserts keyed by OwnerID.
type UserSettings struct {
	ID            string
	OwnerID       string
	Email         string
	DisplayName   string
	RequiredHours int
	UpdatedAt     time.Time
}

// NewUserSettings creates settings for the given owner with the default quota.
func NewUserSettings(ownerID, email, displayName string) UserSettings {
	return UserSettings{
		OwnerID:       ownerID,
		Email:         email,
		DisplayName:   displayName,
		RequiredHours: DefaultRequiredHours,
	}
}

// IsValid checks if the settings satisfy their invariants.
func (us UserSettings) IsValid() bool {
	return us.OwnerID != "" && us.RequiredHours > 0
}
