// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used by the
// bridge handlers, the adapters and the client note store.
//
// Keeping them in one place ensures the host and the UI agree on wording: the
// adapter maps response bodies back to sentinel errors by comparing against
// these strings.
package app

const (
	// MsgErrorLoadingNotes is the fixed message the note store exposes when
	// fetching notes through the bridge fails.
	MsgErrorLoadingNotes = "Error loading notes"

	// MsgErrorSavingNotes is the fixed message the note store exposes when
	// persisting notes through the bridge fails.
	MsgErrorSavingNotes = "Error saving notes"

	// MsgErrorCreatingNotesFile prefixes the notification shown when the
	// notes file cannot be created.
	MsgErrorCreatingNotesFile = "Error creating notes file"

	// MsgErrorReadingNotes prefixes the notification shown when the notes
	// file cannot be read or parsed.
	MsgErrorReadingNotes = "Error reading notes"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIntegrityCheckFailed is returned when the HMAC of a save request
	// does not match its payload.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgLengthMismatch is returned when the declared length of a save
	// request differs from the number of notes it carries.
	MsgLengthMismatch = "notes length mismatch"

	// MsgTitleTooLong is returned when a note title exceeds the allowed
	// number of characters.
	MsgTitleTooLong = "note title is too long"

	// MsgDuplicateNoteID is returned when two notes in a save request share
	// the same id.
	MsgDuplicateNoteID = "duplicate note id"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected host-side
	// failure occurs.
	MsgInternalServerError = "internal server error"
)

// Notification titles shown to the user when the notes file cannot be
// created, read or written.
const (
	TitleCreationFailed = "Creation failed"
	TitleReadingFailed  = "Reading failed"
	TitleSavingFailed   = "Saving failed"
)
