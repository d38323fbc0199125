package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleTooLong    = errors.New("note title is too long")
	ErrDuplicateNoteID = errors.New("duplicate note id")
	ErrLengthMismatch  = errors.New("notes length mismatch")
)
