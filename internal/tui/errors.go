package tui

import "errors"

var ErrNoNotesService = errors.New("notes service is not configured")
