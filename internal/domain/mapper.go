package domain

import (
	"time"

	"ojt-tracker/internal/repository/sqlite"
)

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *TimeEntryMapper) ToDatabase(domainEntry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		ID:             domainEntry.ID,
		OwnerID:        domainEntry.OwnerID,
		Date:           sqlite.FormatDateForDB(domainEntry.Date),
		MorningIn:      clockToDB(domainEntry.Morning.TimeIn),
		MorningOut:     clockToDB(domainEntry.Morning.TimeOut),
		MorningHours:   domainEntry.Morning.Hours,
		AfternoonIn:    clockToDB(domainEntry.Afternoon.TimeIn),
		AfternoonOut:   clockToDB(domainEntry.Afternoon.TimeOut),
		AfternoonHours: domainEntry.Afternoon.Hours,
		EveningIn:      clockToDB(domainEntry.Evening.TimeIn),
		EveningOut:     clockToDB(domainEntry.Evening.TimeOut),
		EveningHours:   domainEntry.Evening.Hours,
		TotalHours:     domainEntry.TotalHours,
		CreatedAt:      domainEntry.CreatedAt,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
// A stored row that fails to parse is a data corruption case; the offending
// field is surfaced as a zero value rather than failing the whole list.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	date, err := sqlite.ParseDateFromDB(dbEntry.Date)
	if err != nil {
		date = time.Time{}
	}
	return TimeEntry{
		ID:      dbEntry.ID,
		OwnerID: dbEntry.OwnerID,
		Date:    date,
		Morning: Shift{
			TimeIn:  clockFromDB(dbEntry.MorningIn),
			TimeOut: clockFromDB(dbEntry.MorningOut),
			Hours:   dbEntry.MorningHours,
		},
		Afternoon: Shift{
			TimeIn:  clockFromDB(dbEntry.AfternoonIn),
			TimeOut: clockFromDB(dbEntry.AfternoonOut),
			Hours:   dbEntry.AfternoonHours,
		},
		Evening: Shift{
			TimeIn:  clockFromDB(dbEntry.EveningIn),
			TimeOut: clockFromDB(dbEntry.EveningOut),
			Hours:   dbEntry.EveningHours,
		},
		TotalHours: dbEntry.TotalHours,
		CreatedAt:  dbEntry.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []*TimeEntry {
	domainEntries := make([]*TimeEntry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntry := m.FromDatabase(*entry)
		domainEntries[i] = &domainEntry
	}
	return domainEntries
}

// UserSettingsMapper handles conversion between domain and database UserSettings models.
type UserSettingsMapper struct{}

// NewUserSettingsMapper creates a new UserSettingsMapper instance.
func NewUserSettingsMapper() *UserSettingsMapper {
	return &UserSettingsMapper{}
}

// ToDatabase converts domain UserSettings to database UserSettings.
func (m *UserSettingsMapper) ToDatabase(domainSettings UserSettings) sqlite.UserSettings {
	return sqlite.UserSettings{
		ID:            domainSettings.ID,
		OwnerID:       domainSettings.OwnerID,
		Email:         domainSettings.Email,
		DisplayName:   domainSettings.DisplayName,
		RequiredHours: domainSettings.RequiredHours,
		UpdatedAt:     domainSettings.UpdatedAt,
	}
}

// FromDatabase converts database UserSettings to domain UserSettings.
func (m *UserSettingsMapper) FromDatabase(dbSettings sqlite.UserSettings) UserSettings {
	return UserSettings{
		ID:            dbSettings.ID,
		OwnerID:       dbSettings.OwnerID,
		Email:         dbSettings.Email,
		DisplayName:   dbSettings.DisplayName,
		RequiredHours: dbSettings.RequiredHours,
		UpdatedAt:     dbSettings.UpdatedAt,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	TimeEntry    *TimeEntryMapper
	UserSettings *UserSettingsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		TimeEntry:    NewTimeEntryMapper(),
		UserSettings: NewUserSettingsMapper(),
	}
}

func clockToDB(ct *ClockTime) *string {
	if ct == nil {
		return nil
	}
	s := ct.String()
	return &s
}

func clockFromDB(s *string) *ClockTime {
	if s == nil || *s == "" {
		return nil
	}
	ct, err := ParseClockTime(*s)
	if err != nil {
		return nil
	}
	return ct
}
