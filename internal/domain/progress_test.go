package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ojt-tracker/internal/errors"
)

func entryWithHours(hours float64) *TimeEntry {
	return &TimeEntry{
		Date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		TotalHours: hours,
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name          string
		entries       []*TimeEntry
		requiredHours float64
		expected      Progress
	}{
		{
			name:          "no entries",
			entries:       nil,
			requiredHours: 486,
			expected:      Progress{Completed: 0, Remaining: 486, Percentage: 0},
		},
		{
			name:          "halfway through the quota",
			entries:       []*TimeEntry{entryWithHours(243)},
			requiredHours: 486,
			expected:      Progress{Completed: 243, Remaining: 243, Percentage: 50},
		},
		{
			name:          "multiple entries summed",
			entries:       []*TimeEntry{entryWithHours(8), entryWithHours(8), entryWithHours(4)},
			requiredHours: 486,
			expected:      Progress{Completed: 20, Remaining: 466, Percentage: 20.0 / 486 * 100},
		},
		{
			name:          "quota exceeded caps percentage and floors remaining",
			entries:       []*TimeEntry{entryWithHours(600)},
			requiredHours: 486,
			expected:      Progress{Completed: 600, Remaining: 0, Percentage: 100},
		},
		{
			name:          "exactly at the quota",
			entries:       []*TimeEntry{entryWithHours(486)},
			requiredHours: 486,
			expected:      Progress{Completed: 486, Remaining: 0, Percentage: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Aggregate(tt.entries, tt.requiredHours)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected.Completed, result.Completed, 1e-9)
			assert.InDelta(t, tt.expected.Remaining, result.Remaining, 1e-9)
			assert.InDelta(t, tt.expected.Percentage, result.Percentage, 1e-9)
		})
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	entries := []*TimeEntry{entryWithHours(8), entryWithHours(4), entryWithHours(2)}
	reversed := []*TimeEntry{entryWithHours(2), entryWithHours(4), entryWithHours(8)}

	forward, err := Aggregate(entries, 486)
	require.NoError(t, err)
	backward, err := Aggregate(reversed, 486)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}

func TestAggregate_NonPositiveQuota(t *testing.T) {
	for _, required := range []float64{0, -10} {
		_, err := Aggregate([]*TimeEntry{entryWithHours(8)}, required)
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfiguration))
	}
}
