// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the notes bridge: the narrow
// request/response channel between the UI process and the host process that
// owns the notes file.
//
// The primary abstraction is [Bridge], which decouples the note store from
// the underlying transport. The package ships an HTTP/REST implementation
// ([NewHTTPBridge]), a gRPC implementation ([NewGRPCBridge]) and an
// in-process one ([NewLocalBridge]) used when the client embeds the host.
//
// Every failure is wrapped in [ErrLoadingNotes] or [ErrSavingNotes] so
// callers can use [errors.Is] regardless of the transport; the transport
// cause (for example [ErrTooManyRequests] for HTTP 429) stays in the chain.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_mock.go -package=mock

// Bridge exposes exactly the two host operations.
type Bridge interface {
	// GetNotes fetches the whole note collection. The host creates an empty
	// notes file first when none exists.
	GetNotes(ctx context.Context) ([]models.Note, error)

	// SaveNotes replaces the stored collection with notes. It reports true
	// on success.
	SaveNotes(ctx context.Context, notes []models.Note) (bool, error)
}

// NotesHost is the host-side notes service as seen by the in-process bridge.
type NotesHost interface {
	LoadNotes(ctx context.Context) ([]models.Note, error)
	SaveNotes(ctx context.Context, notes []models.Note) (bool, error)
}
