package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var morningIn, morningOut, afternoonIn, afternoonOut, eveningIn, eveningOut sql.NullString
	var createdAt string

	err := scanner.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.Date,
		&morningIn,
		&morningOut,
		&entry.MorningHours,
		&afternoonIn,
		&afternoonOut,
		&entry.AfternoonHours,
		&eveningIn,
		&eveningOut,
		&entry.EveningHours,
		&entry.TotalHours,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.MorningIn = nullStringPtr(morningIn)
	entry.MorningOut = nullStringPtr(morningOut)
	entry.AfternoonIn = nullStringPtr(afternoonIn)
	entry.AfternoonOut = nullStringPtr(afternoonOut)
	entry.EveningIn = nullStringPtr(eveningIn)
	entry.EveningOut = nullStringPtr(eveningOut)

	entry.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanUserSettings scans a single user settings row
func ScanUserSettings(scanner Scanner) (*UserSettings, error) {
	settings := &UserSettings{}
	var updatedAt string

	err := scanner.Scan(
		&settings.ID,
		&settings.OwnerID,
		&settings.Email,
		&settings.DisplayName,
		&settings.RequiredHours,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	settings.UpdatedAt, err = ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
