package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// errorStatuses is checked in order.
var errorStatuses = []struct {
	target  error
	code    codes.Code
	message string
}{
	{validators.ErrLengthMismatch, codes.InvalidArgument, app.MsgLengthMismatch},
	{validators.ErrTitleTooLong, codes.InvalidArgument, app.MsgTitleTooLong},
	{validators.ErrDuplicateNoteID, codes.InvalidArgument, app.MsgDuplicateNoteID},

	{store.ErrCreatingNotesFile, codes.Internal, app.MsgErrorCreatingNotesFile},
	{store.ErrReadingNotes, codes.Internal, app.MsgErrorReadingNotes},
	{store.ErrSavingNotes, codes.Internal, app.MsgErrorSavingNotes},
}

func statusFromError(err error) error {
	for _, st := range errorStatuses {
		if errors.Is(err, st.target) {
			return status.Error(st.code, st.message)
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
