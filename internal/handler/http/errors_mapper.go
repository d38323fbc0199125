package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	validators.ErrLengthMismatch:  http.StatusBadRequest,
	validators.ErrTitleTooLong:    http.StatusBadRequest,
	validators.ErrDuplicateNoteID: http.StatusBadRequest,

	ErrIntegrityCheckFailed: http.StatusBadRequest,

	store.ErrCreatingNotesFile: http.StatusInternalServerError,
	store.ErrReadingNotes:      http.StatusInternalServerError,
	store.ErrSavingNotes:       http.StatusInternalServerError,
}

// errorMessages holds the response body for errors whose wording the
// client may show.
var errorMessages = map[error]string{
	validators.ErrLengthMismatch:  app.MsgLengthMismatch,
	validators.ErrTitleTooLong:    app.MsgTitleTooLong,
	validators.ErrDuplicateNoteID: app.MsgDuplicateNoteID,
	ErrIntegrityCheckFailed:       app.MsgIntegrityCheckFailed,

	store.ErrCreatingNotesFile: app.MsgErrorCreatingNotesFile,
	store.ErrReadingNotes:      app.MsgErrorReadingNotes,
	store.ErrSavingNotes:       app.MsgErrorSavingNotes,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}
