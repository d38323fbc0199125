package adapter

import "errors"

// Operation-level errors. Every Bridge failure wraps one of these.
var (
	ErrLoadingNotes = errors.New("error loading notes")
	ErrSavingNotes  = errors.New("error saving notes")
)

// Transport-level errors mapped from HTTP status codes and gRPC codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("host unavailable")
	ErrSaveNotConfirmed    = errors.New("host did not confirm the save")
	ErrNoBridgeConfigured  = errors.New("no bridge transport configured")
)
