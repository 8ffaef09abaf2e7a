package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserSettings(t *testing.T) {
	result := NewUserSettings("owner-1", "trainee@example.com", "Trainee")

	assert.Equal(t, "owner-1", result.OwnerID)
	assert.Equal(t, "trainee@example.com", result.Email)
	assert.Equal(t, "Trainee", result.DisplayName)
	assert.Equal(t, DefaultRequiredHours, result.RequiredHours)
	assert.Empty(t, result.ID)
}

func TestUserSettings_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		settings UserSettings
		expected bool
	}{
		{
			name:     "valid settings",
			settings: UserSettings{OwnerID: "owner-1", RequiredHours: 486},
			expected: true,
		},
		{
			name:     "missing owner",
			settings: UserSettings{RequiredHours: 486},
			expected: false,
		},
		{
			name:     "zero required hours",
			settings: UserSettings{OwnerID: "owner-1", RequiredHours: 0},
			expected: false,
		},
		{
			name:     "negative required hours",
			settings: UserSettings{OwnerID: "owner-1", RequiredHours: -1},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.IsValid())
		})
	}
}
