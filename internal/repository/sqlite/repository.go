package sqlite

import (
	"database/sql"
	"time"

	"context"

	"ojt-tracker/internal/errors"
	"ojt-tracker/internal/repository/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository defines the store gateway interface. All reads and writes are
// scoped by owner; ids are opaque strings assigned by the store on creation.
type Repository interface {
	// Time entry operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry) error
	ListTimeEntries(ctx context.Context, ownerID string) ([]*TimeEntry, error)
	ListTimeEntriesUnordered(ctx context.Context, ownerID string) ([]*TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id string) error

	// User settings operations
	GetUserSettings(ctx context.Context, ownerID string) (*UserSettings, error)
	UpsertUserSettings(ctx context.Context, settings *UserSettings) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const timeEntryColumns = `id, owner_id, date,
	morning_in, morning_out, morning_hours,
	afternoon_in, afternoon_out, afternoon_hours,
	evening_in, evening_out, evening_hours,
	total_hours, created_at`

// CreateTimeEntry inserts a new time entry, assigning its id and creation
// timestamp. The entry is updated in place with the assigned values.
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	entry.ID = uuid.NewString()
	entry.CreatedAt = r.now().UTC().Truncate(time.Second)

	query := `
	INSERT INTO time_entries (` + timeEntryColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.OwnerID, entry.Date,
		entry.MorningIn, entry.MorningOut, entry.MorningHours,
		entry.AfternoonIn, entry.AfternoonOut, entry.AfternoonHours,
		entry.EveningIn, entry.EveningOut, entry.EveningHours,
		entry.TotalHours, FormatTimeForDB(entry.CreatedAt))
	if err != nil {
		return HandleDatabaseError("create time entry", err)
	}
	return nil
}

// ListTimeEntries retrieves all time entries for the owner, newest date first.
func (r *SQLiteRepository) ListTimeEntries(ctx context.Context, ownerID string) ([]*TimeEntry, error) {
	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries
	WHERE owner_id = ?
	ORDER BY date DESC, created_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", ownerID)
}

// ListTimeEntriesUnordered retrieves all time entries for the owner without
// any server-side ordering. Degraded variant for callers whose ordered query
// failed; they are expected to sort client-side.
func (r *SQLiteRepository) ListTimeEntriesUnordered(ctx context.Context, ownerID string) ([]*TimeEntry, error) {
	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries
	WHERE owner_id = ?`

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", ownerID)
}

// DeleteTimeEntry deletes a time entry by ID
func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id string) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", id, id)
}

// GetUserSettings retrieves the settings row for the owner. Returns a
// not-found error when the owner has no settings yet.
func (r *SQLiteRepository) GetUserSettings(ctx context.Context, ownerID string) (*UserSettings, error) {
	query := `
	SELECT id, owner_id, email, display_name, required_hours, updated_at
	FROM users
	WHERE owner_id = ?`

	return QuerySingle(ctx, r.db, query, ScanUserSettings, "user settings", ownerID, ownerID)
}

// UpsertUserSettings writes the settings row for the owner. Keyed by owner id
// so repeated or racing writes update the single existing row instead of
// accumulating duplicates.
func (r *SQLiteRepository) UpsertUserSettings(ctx context.Context, settings *UserSettings) error {
	if settings.ID == "" {
		settings.ID = uuid.NewString()
	}
	settings.UpdatedAt = r.now().UTC().Truncate(time.Second)

	query := `
	INSERT INTO users (id, owner_id, email, display_name, required_hours, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(owner_id) DO UPDATE SET
		email = excluded.email,
		display_name = excluded.display_name,
		required_hours = excluded.required_hours,
		updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		settings.ID, settings.OwnerID, settings.Email, settings.DisplayName,
		settings.RequiredHours, FormatTimeForDB(settings.UpdatedAt))
	if err != nil {
		return HandleDatabaseError("upsert user settings", err)
	}
	return nil
}
