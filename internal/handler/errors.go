package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither listener
// address is configured.
var errNoHandlersAreCreated = errors.New("no handlers are created")
