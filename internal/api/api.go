package api

import (
	"context"
	"sort"
	"time"

	"ojt-tracker/internal/domain"
	"ojt-tracker/internal/errors"
	"ojt-tracker/internal/logging"
	"ojt-tracker/internal/repository/sqlite"
	"ojt-tracker/internal/session"
	"ojt-tracker/internal/validation"
)

// EntryInput carries the raw form values for one entry: a date and three
// optional time-in/time-out pairs. Empty strings mean the bound was skipped.
type EntryInput struct {
	Date         string
	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string
	EveningIn    string
	EveningOut   string
}

// API defines the interface for all time entry and settings operations.
// Every operation is scoped to the currently signed-in owner.
type API interface {
	// Time entry operations
	AddEntry(ctx context.Context, input EntryInput) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context) ([]*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, id string) error

	// Progress and settings operations
	Progress(ctx context.Context) (*domain.Progress, error)
	RequiredHours(ctx context.Context) (int, error)
	SetRequiredHours(ctx context.Context, hours int) error
}

type apiImpl struct {
	repo               sqlite.Repository
	sessions           session.Provider
	mapper             *domain.Mapper
	timeEntryValidator *validation.TimeEntryValidator
	settingsValidator  *validation.SettingsValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository, sessions session.Provider) API {
	return &apiImpl{
		repo:               repo,
		sessions:           sessions,
		mapper:             domain.NewMapper(),
		timeEntryValidator: validation.NewTimeEntryValidator(),
		settingsValidator:  validation.NewSettingsValidator(),
	}
}

const dateLayout = "2006-01-02"

// AddEntry validates the raw input, derives per-shift and total hours, and
// persists the entry for the signed-in owner. Nothing reaches the store when
// validation fails; the caller keeps its form state for correction.
func (a *apiImpl) AddEntry(ctx context.Context, input EntryInput) (*domain.TimeEntry, error) {
	identity, err := a.requireIdentity()
	if err != nil {
		return nil, err
	}

	entry, err := a.buildEntry(input)
	if err != nil {
		return nil, err
	}

	if err := a.timeEntryValidator.ValidateEntryForCreation(*entry); err != nil {
		return nil, err
	}

	entry.OwnerID = identity.OwnerID
	dbEntry := a.mapper.TimeEntry.ToDatabase(*entry)
	if err := a.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	created := a.mapper.TimeEntry.FromDatabase(dbEntry)
	return &created, nil
}

// buildEntry parses the raw form values into a domain entry. Validation
// errors for the date and clock-time formats are collected here so the user
// sees them before any hour arithmetic happens.
func (a *apiImpl) buildEntry(input EntryInput) (*domain.TimeEntry, error) {
	validationError := validation.NewValidationError()

	var date time.Time
	if input.Date == "" {
		validationError.AddRequiredError("date")
	} else {
		parsed, err := time.Parse(dateLayout, input.Date)
		if err != nil {
			validationError.AddInvalidFormatError("date", input.Date, dateLayout)
		} else {
			date = parsed
		}
	}

	shiftInputs := []struct {
		name    string
		in, out string
	}{
		{"morning", input.MorningIn, input.MorningOut},
		{"afternoon", input.AfternoonIn, input.AfternoonOut},
		{"evening", input.EveningIn, input.EveningOut},
	}
	shifts := make([]domain.Shift, len(shiftInputs))
	for i, si := range shiftInputs {
		if err := a.timeEntryValidator.ValidateShiftInput(si.name, si.in, si.out); err != nil {
			if shiftErr, ok := err.(*validation.ValidationError); ok {
				validationError.Errors = append(validationError.Errors, shiftErr.Errors...)
			}
			continue
		}
		shifts[i] = domain.NewShift(parseClock(si.in), parseClock(si.out))
	}

	if validationError.HasErrors() {
		return nil, validationError
	}

	entry := domain.NewTimeEntry(date, shifts[0], shifts[1], shifts[2])
	return &entry, nil
}

// ListEntries returns the owner's entries ordered by date descending. The
// ordered query is attempted first; when the store reports it as unsupported
// the unordered query is retried once and the result sorted client-side.
// This fallback is mandatory: the store may refuse the ordered form while
// still answering the unordered one.
func (a *apiImpl) ListEntries(ctx context.Context) ([]*domain.TimeEntry, error) {
	identity, err := a.requireIdentity()
	if err != nil {
		return nil, err
	}

	dbEntries, err := a.repo.ListTimeEntries(ctx, identity.OwnerID)
	if err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeUnsupportedQuery) {
			return nil, err
		}
		logging.Debugf("ordered entry query unsupported, retrying unordered: %v\n", err)
		dbEntries, err = a.repo.ListTimeEntriesUnordered(ctx, identity.OwnerID)
		if err != nil {
			return nil, err
		}
		entries := a.mapper.TimeEntry.FromDatabaseSlice(dbEntries)
		sortEntriesByDateDesc(entries)
		return entries, nil
	}

	return a.mapper.TimeEntry.FromDatabaseSlice(dbEntries), nil
}

// DeleteEntry deletes one of the owner's entries by id.
func (a *apiImpl) DeleteEntry(ctx context.Context, id string) error {
	if _, err := a.requireIdentity(); err != nil {
		return err
	}
	if err := a.timeEntryValidator.ValidateEntryID(id); err != nil {
		return err
	}
	return a.repo.DeleteTimeEntry(ctx, id)
}

// Progress aggregates the owner's entries against their hour quota.
func (a *apiImpl) Progress(ctx context.Context) (*domain.Progress, error) {
	entries, err := a.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	required, err := a.RequiredHours(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := domain.Aggregate(entries, float64(required))
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// RequiredHours returns the owner's hour quota, creating the settings record
// with the default quota on first use.
func (a *apiImpl) RequiredHours(ctx context.Context) (int, error) {
	identity, err := a.requireIdentity()
	if err != nil {
		return 0, err
	}

	settings, err := a.getOrCreateSettings(ctx, identity)
	if err != nil {
		return 0, err
	}
	return settings.RequiredHours, nil
}

// SetRequiredHours updates the owner's hour quota. The write is an idempotent
// upsert keyed by owner, so repeated or racing updates keep a single record.
func (a *apiImpl) SetRequiredHours(ctx context.Context, hours int) error {
	identity, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.settingsValidator.ValidateRequiredHours(hours); err != nil {
		return err
	}

	settings, err := a.getOrCreateSettings(ctx, identity)
	if err != nil {
		return err
	}

	settings.RequiredHours = hours
	dbSettings := a.mapper.UserSettings.ToDatabase(*settings)
	return a.repo.UpsertUserSettings(ctx, &dbSettings)
}

// getOrCreateSettings loads the owner's settings, lazily creating them with
// the default quota when absent.
func (a *apiImpl) getOrCreateSettings(ctx context.Context, identity *session.Identity) (*domain.UserSettings, error) {
	dbSettings, err := a.repo.GetUserSettings(ctx, identity.OwnerID)
	if err == nil {
		settings := a.mapper.UserSettings.FromDatabase(*dbSettings)
		return &settings, nil
	}
	if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	settings := domain.NewUserSettings(identity.OwnerID, identity.Email, identity.DisplayName)
	created := a.mapper.UserSettings.ToDatabase(settings)
	if err := a.repo.UpsertUserSettings(ctx, &created); err != nil {
		return nil, err
	}
	restored := a.mapper.UserSettings.FromDatabase(created)
	return &restored, nil
}

// requireIdentity returns the signed-in identity or an auth error.
func (a *apiImpl) requireIdentity() (*session.Identity, error) {
	identity := a.sessions.Current()
	if identity == nil {
		return nil, errors.NewAuthError(errors.CodeSignedOut, "You are not signed in. Run 'ojt login' first.", nil)
	}
	return identity, nil
}

func parseClock(s string) *domain.ClockTime {
	if s == "" {
		return nil
	}
	ct, err := domain.ParseClockTime(s)
	if err != nil {
		return nil
	}
	return ct
}

func sortEntriesByDateDesc(entries []*domain.TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].Date.After(entries[j].Date)
	})
}
