package store

import "errors"

// Sentinel errors returned by the notes file gateway. Callers should use
// [errors.Is] to match against these values; the underlying cause is
// wrapped alongside.
var (
	// ErrCreatingNotesFile is returned when the notes file is missing and
	// cannot be created with its default content.
	ErrCreatingNotesFile = errors.New("error creating notes file")

	// ErrReadingNotes is returned when the notes file cannot be read or
	// does not hold a JSON array of notes.
	ErrReadingNotes = errors.New("error reading notes")

	// ErrSavingNotes is returned when the notes collection cannot be
	// encoded or written.
	ErrSavingNotes = errors.New("error saving notes")
)

// ErrSettingNotFound is returned by the settings repository when the
// requested key has never been written.
var ErrSettingNotFound = errors.New("setting was not found")

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
