// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of characters a note title may hold.
const MaxTitleLength = 100

// Note is a single user-authored document.
//
// Content holds rich-text markup produced by the editor and is stored
// verbatim; it may be empty.
type Note struct {
	// ID identifies the note within the collection. It is generated on
	// creation and never reused within a session.
	ID int64 `json:"id"`

	// Title is the plain-text heading of the note, at most
	// [MaxTitleLength] characters. May be empty.
	Title string `json:"title"`

	// Content is the editor markup (HTML). May be empty.
	Content string `json:"content"`
}

// IsBlank reports whether both title and content are empty after trimming.
func (n Note) IsBlank() bool {
	return strings.TrimSpace(n.Title+n.Content) == ""
}

// ClampTitle returns a copy of n whose title is cut to [MaxTitleLength]
// characters.
func (n Note) ClampTitle() Note {
	if utf8.RuneCountInString(n.Title) <= MaxTitleLength {
		return n
	}

	runes := []rune(n.Title)
	n.Title = string(runes[:MaxTitleLength])
	return n
}

// CloneNotes returns an independent copy of notes. A nil input yields an
// empty, non-nil slice so it serialises as `[]`.
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}
