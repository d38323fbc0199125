package http

import "errors"

var (
	// ErrIntegrityCheckFailed is reported when the HMAC of a save request
	// does not match its notes.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
