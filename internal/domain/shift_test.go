package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clock(hour, minute int) *ClockTime {
	return &ClockTime{Hour: hour, Minute: minute}
}

func TestComputeShiftHours(t *testing.T) {
	tests := []struct {
		name     string
		timeIn   *ClockTime
		timeOut  *ClockTime
		expected float64
	}{
		{
			name:     "regular morning shift",
			timeIn:   clock(8, 0),
			timeOut:  clock(12, 0),
			expected: 4.0,
		},
		{
			name:     "half hour shift",
			timeIn:   clock(13, 0),
			timeOut:  clock(13, 30),
			expected: 0.5,
		},
		{
			name:     "overnight shift wraps past midnight",
			timeIn:   clock(22, 0),
			timeOut:  clock(6, 0),
			expected: 8.0,
		},
		{
			name:     "one minute before midnight to one minute after",
			timeIn:   clock(23, 59),
			timeOut:  clock(0, 1),
			expected: 2.0 / 60,
		},
		{
			name:     "equal bounds yield zero not twenty four",
			timeIn:   clock(9, 0),
			timeOut:  clock(9, 0),
			expected: 0,
		},
		{
			name:     "missing time in contributes nothing",
			timeIn:   nil,
			timeOut:  clock(12, 0),
			expected: 0,
		},
		{
			name:     "missing time out contributes nothing",
			timeIn:   clock(8, 0),
			timeOut:  nil,
			expected: 0,
		},
		{
			name:     "both bounds missing",
			timeIn:   nil,
			timeOut:  nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeShiftHours(tt.timeIn, tt.timeOut)
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestNewShift(t *testing.T) {
	shift := NewShift(clock(8, 0), clock(12, 30))

	assert.Equal(t, clock(8, 0), shift.TimeIn)
	assert.Equal(t, clock(12, 30), shift.TimeOut)
	assert.InDelta(t, 4.5, shift.Hours, 1e-9)
}

func TestShift_IsEmpty(t *testing.T) {
	assert.True(t, Shift{}.IsEmpty())
	assert.True(t, NewShift(clock(8, 0), nil).IsEmpty())
	assert.False(t, NewShift(clock(8, 0), clock(9, 0)).IsEmpty())
}
