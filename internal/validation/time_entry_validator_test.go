package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ojt-tracker/internal/domain"
)

func clock(hour, minute int) *domain.ClockTime {
	return &domain.ClockTime{Hour: hour, Minute: minute}
}

func TestTimeEntryValidator_ValidateEntryForCreation(t *testing.T) {
	validator := NewTimeEntryValidator()
	date := time.Now().AddDate(0, 0, -1)

	tests := []struct {
		name      string
		entry     domain.TimeEntry
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid entry with one shift",
			entry:   domain.NewTimeEntry(date, domain.NewShift(clock(8, 0), clock(12, 0)), domain.Shift{}, domain.Shift{}),
			wantErr: false,
		},
		{
			name:      "missing date",
			entry:     domain.NewTimeEntry(time.Time{}, domain.NewShift(clock(8, 0), clock(12, 0)), domain.Shift{}, domain.Shift{}),
			wantErr:   true,
			wantField: "date",
		},
		{
			name:      "all shifts empty",
			entry:     domain.NewTimeEntry(date, domain.Shift{}, domain.Shift{}, domain.Shift{}),
			wantErr:   true,
			wantField: "shifts",
		},
		{
			name:      "only half-open shifts contribute nothing",
			entry:     domain.NewTimeEntry(date, domain.NewShift(clock(8, 0), nil), domain.Shift{}, domain.Shift{}),
			wantErr:   true,
			wantField: "shifts",
		},
		{
			name:      "date too far in the past",
			entry:     domain.NewTimeEntry(time.Now().AddDate(-20, 0, 0), domain.NewShift(clock(8, 0), clock(12, 0)), domain.Shift{}, domain.Shift{}),
			wantErr:   true,
			wantField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateEntryForCreation(tt.entry)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.NotEmpty(t, validationErr.GetFieldErrors(tt.wantField))
		})
	}
}

func TestTimeEntryValidator_ValidateShiftInput(t *testing.T) {
	validator := NewTimeEntryValidator()

	tests := []struct {
		name    string
		timeIn  string
		timeOut string
		wantErr bool
	}{
		{"both bounds present", "08:00", "12:00", false},
		{"both bounds empty", "", "", false},
		{"only time in", "08:00", "", false},
		{"only time out", "", "12:00", false},
		{"bad time in", "8am", "12:00", true},
		{"bad time out", "08:00", "25:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateShiftInput("morning", tt.timeIn, tt.timeOut)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeEntryValidator_ValidateEntryID(t *testing.T) {
	validator := NewTimeEntryValidator()

	assert.NoError(t, validator.ValidateEntryID("entry-1"))
	assert.Error(t, validator.ValidateEntryID(""))
	assert.Error(t, validator.ValidateEntryID("   "))
}
