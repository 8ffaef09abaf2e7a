package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ojt-tracker/internal/domain"
	"ojt-tracker/internal/errors"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return date
}

func TestAddCommand_ParsesShiftPairs(t *testing.T) {
	app, fapi, _ := newTestApp()
	command := NewAddCommand(app)

	err := command.Execute(context.Background(), []string{
		"2026-03-09", "morning=08:00-12:00", "afternoon=13:00-17:00", "evening=22:00-06:00",
	})

	require.NoError(t, err)
	require.NotNil(t, fapi.addedInput)
	assert.Equal(t, "2026-03-09", fapi.addedInput.Date)
	assert.Equal(t, "08:00", fapi.addedInput.MorningIn)
	assert.Equal(t, "12:00", fapi.addedInput.MorningOut)
	assert.Equal(t, "13:00", fapi.addedInput.AfternoonIn)
	assert.Equal(t, "17:00", fapi.addedInput.AfternoonOut)
	assert.Equal(t, "22:00", fapi.addedInput.EveningIn)
	assert.Equal(t, "06:00", fapi.addedInput.EveningOut)
}

func TestAddCommand_AllowsOpenBounds(t *testing.T) {
	app, fapi, _ := newTestApp()
	command := NewAddCommand(app)

	err := command.Execute(context.Background(), []string{"2026-03-09", "morning=08:00-", "afternoon=-17:00"})

	require.NoError(t, err)
	assert.Equal(t, "08:00", fapi.addedInput.MorningIn)
	assert.Empty(t, fapi.addedInput.MorningOut)
	assert.Empty(t, fapi.addedInput.AfternoonIn)
	assert.Equal(t, "17:00", fapi.addedInput.AfternoonOut)
}

func TestAddCommand_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"shift without equals", []string{"2026-03-09", "morning"}},
		{"shift without dash", []string{"2026-03-09", "morning=08:00"}},
		{"unknown shift name", []string{"2026-03-09", "night=22:00-06:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, fapi, _ := newTestApp()
			command := NewAddCommand(app)

			err := command.Execute(context.Background(), tt.args)

			assert.Error(t, err)
			assert.Nil(t, fapi.addedInput)
		})
	}
}

func TestListCommand_LoadsAndCachesEntries(t *testing.T) {
	app, fapi, _ := newTestApp()
	entry := domain.NewTimeEntry(
		mustDate(t, "2026-03-09"),
		domain.NewShift(&domain.ClockTime{Hour: 8}, &domain.ClockTime{Hour: 12}),
		domain.Shift{}, domain.Shift{},
	)
	entry.ID = "entry-1"
	fapi.entries = []*domain.TimeEntry{&entry}

	command := NewListCommand(app)
	err := command.Execute(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, app.entries, 1)
	assert.Equal(t, "entry-1", app.entries[0].ID)
}

func TestListCommand_DatabaseErrorKeepsCachedEntries(t *testing.T) {
	app, fapi, _ := newTestApp()
	cached := domain.TimeEntry{ID: "entry-1", Date: mustDate(t, "2026-03-08")}
	app.onEntriesLoaded([]*domain.TimeEntry{&cached})

	fapi.listErr = errors.NewDatabaseError("query time entries", assert.AnError)

	command := NewListCommand(app)
	err := command.Execute(context.Background(), nil)

	require.NoError(t, err, "storage read failures degrade to the cached list")
	require.Len(t, app.entries, 1)
	assert.Equal(t, "entry-1", app.entries[0].ID)
}

func TestListCommand_AuthErrorSurfaces(t *testing.T) {
	app, fapi, _ := newTestApp()
	fapi.listErr = errors.NewAuthError(errors.CodeSignedOut, "You are not signed in.", nil)

	command := NewListCommand(app)
	err := command.Execute(context.Background(), nil)

	assert.Error(t, err)
}

func TestDeleteCommand_Confirmed(t *testing.T) {
	app, fapi, _ := newTestApp()
	command := NewDeleteCommand(app)
	command.input = strings.NewReader("y\n")

	err := command.Execute(context.Background(), []string{"entry-1"})

	require.NoError(t, err)
	assert.Equal(t, "entry-1", fapi.deletedID)
}

func TestDeleteCommand_Declined(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"explicit no", "n\n"},
		{"empty answer defaults to no", "\n"},
		{"anything else is no", "maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, fapi, _ := newTestApp()
			command := NewDeleteCommand(app)
			command.input = strings.NewReader(tt.input)

			err := command.Execute(context.Background(), []string{"entry-1"})

			require.NoError(t, err)
			assert.Empty(t, fapi.deletedID)
		})
	}
}

func TestDeleteCommand_RequiresID(t *testing.T) {
	app, _, _ := newTestApp()
	command := NewDeleteCommand(app)

	assert.Error(t, command.Execute(context.Background(), nil))
	assert.Error(t, command.Execute(context.Background(), []string{"a", "b"}))
}

func TestQuotaCommand_ShowAndSet(t *testing.T) {
	app, fapi, _ := newTestApp()
	command := NewQuotaCommand(app)

	require.NoError(t, command.Execute(context.Background(), nil))

	require.NoError(t, command.Execute(context.Background(), []string{"600"}))
	assert.Equal(t, 600, fapi.setHours)
}

func TestQuotaCommand_InvalidArguments(t *testing.T) {
	app, _, _ := newTestApp()
	command := NewQuotaCommand(app)

	assert.Error(t, command.Execute(context.Background(), []string{"abc"}))
	assert.Error(t, command.Execute(context.Background(), []string{"600", "700"}))
}

func TestProgressCommand(t *testing.T) {
	app, fapi, _ := newTestApp()
	fapi.progress = domain.Progress{Completed: 243, Remaining: 243, Percentage: 50}

	command := NewProgressCommand(app)
	err := command.Execute(context.Background(), nil)

	assert.NoError(t, err)
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		filled     int
	}{
		{"empty", 0, 0},
		{"half", 50, progressBarWidth / 2},
		{"full", 100, progressBarWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderBar(tt.percentage)

			assert.Equal(t, tt.filled, strings.Count(bar, "#"))
			assert.Equal(t, progressBarWidth-tt.filled, strings.Count(bar, "-"))
		})
	}
}

func TestLoginCommand(t *testing.T) {
	app, _, provider := newTestApp()
	command := NewLoginCommand(app)

	err := command.Execute(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, provider.Current())
	assert.NotNil(t, app.currentIdentity)
}

func TestLogoutCommand(t *testing.T) {
	app, _, provider := newTestApp()
	_, err := provider.SignIn(context.Background())
	require.NoError(t, err)

	command := NewLogoutCommand(app)
	require.NoError(t, command.Execute(context.Background(), nil))

	assert.Nil(t, provider.Current())
	assert.Nil(t, app.currentIdentity)
}
