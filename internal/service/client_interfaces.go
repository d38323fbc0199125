package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ClientNotesService is the note state store of the UI session: the single
// authoritative in-memory copy of the note collection plus its loading and
// error status. Mutations never touch the bridge; only Load and SaveNotes do.
type ClientNotesService interface {
	// Load fetches the collection through the bridge and replaces the
	// in-memory copy. On failure the collection is left empty and the load
	// error is set to [app.MsgErrorLoadingNotes]. Observers are not notified.
	Load(ctx context.Context) error

	// CreateNote prepends a new blank note with a fresh id. It is a no-op
	// (false) when the head note is already blank.
	CreateNote() (models.Note, bool)

	// RemoveNote deletes the note with the given id. Unknown ids are ignored.
	RemoveNote(id int64) bool

	// UpdateNote replaces the note with the same id, clamping its title.
	// Unknown ids are ignored.
	UpdateNote(note models.Note) bool

	// SaveNotes sends a snapshot of the whole collection through the bridge.
	// On failure the save error is set to [app.MsgErrorSavingNotes]; the
	// in-memory collection is never rolled back. Calls are serialized.
	SaveNotes(ctx context.Context) error

	// State returns a snapshot of the store.
	State() NotesState

	// Subscribe registers fn to run after every effective mutation and
	// returns a function removing it.
	Subscribe(fn func()) (unsubscribe func())
}

// ClientSaveJob debounces persistence: every Notify (re)arms a single timer
// and only a timer that fires without being superseded runs a save.
type ClientSaveJob interface {
	// Notify records a change and restarts the quiet period.
	Notify()

	// Flush cancels the pending timer and saves right away when a change
	// is pending. A debounced save already running is waited for first.
	Flush(ctx context.Context) error

	// Stop cancels the pending timer without saving. Later Notify calls
	// are ignored.
	Stop()
}

// ClientSettingsService exposes the locally persisted UI preferences.
type ClientSettingsService interface {
	// IsFirstLaunch reports whether the app runs for the first time and
	// records that it has now been launched.
	IsFirstLaunch(ctx context.Context) (bool, error)
}
