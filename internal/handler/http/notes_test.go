// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ── GET /api/notes ──────────────────────────────────────────────────────────

func TestGetNotes_Success(t *testing.T) {
	router, notes := newTestRouter(t, config.Server{}, "")
	want := []models.Note{{ID: 12345678, Title: "t", Content: "<p>c</p>"}}

	notes.EXPECT().LoadNotes(gomock.Any()).Return(want, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/notes", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestGetNotes_EmptyCollectionIsArray(t *testing.T) {
	router, notes := newTestRouter(t, config.Server{}, "")
	notes.EXPECT().LoadNotes(gomock.Any()).Return(nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/notes", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetNotes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "creation failed", err: store.ErrCreatingNotesFile, wantMsg: app.MsgErrorCreatingNotesFile},
		{name: "reading failed", err: store.ErrReadingNotes, wantMsg: app.MsgErrorReadingNotes},
		{name: "unknown", err: fmt.Errorf("boom"), wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, notes := newTestRouter(t, config.Server{}, "")
			notes.EXPECT().LoadNotes(gomock.Any()).Return(nil, fmt.Errorf("wrapped: %w", tt.err))

			rec := doRequest(t, router, http.MethodGet, "/api/notes", nil)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantMsg), rec.Body.String())
		})
	}
}

// ── PUT /api/notes ──────────────────────────────────────────────────────────

func TestSaveNotes_Success(t *testing.T) {
	router, notes := newTestRouter(t, config.Server{}, "")
	req := saveRequest(models.Note{ID: 1, Title: "a"}, models.Note{ID: 2})

	notes.EXPECT().SaveNotes(gomock.Any(), req.Notes).Return(true, nil)

	rec := doRequest(t, router, http.MethodPut, "/api/notes", req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"saved":true}`, rec.Body.String())
}

func TestSaveNotes_EmptyCollection(t *testing.T) {
	router, notes := newTestRouter(t, config.Server{}, "")

	notes.EXPECT().SaveNotes(gomock.Any(), []models.Note{}).Return(true, nil)

	rec := doRequest(t, router, http.MethodPut, "/api/notes", `{"notes":null,"length":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveNotes_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		wantMsg string
	}{
		{name: "invalid json", body: `{"notes":[`, wantMsg: app.MsgInvalidDataProvided},
		{
			name:    "length mismatch",
			body:    models.SaveNotesRequest{Notes: []models.Note{{ID: 1}}, Length: 3},
			wantMsg: app.MsgLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, config.Server{}, "") // service must not be called

			rec := doRequest(t, router, http.MethodPut, "/api/notes", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantMsg), rec.Body.String())
		})
	}
}

func TestSaveNotes_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "title too long",
			err:        fmt.Errorf("validation error at index 0: %w", validators.ErrTitleTooLong),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgTitleTooLong,
		},
		{
			name:       "duplicate id",
			err:        fmt.Errorf("validation error at index 1: %w", validators.ErrDuplicateNoteID),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgDuplicateNoteID,
		},
		{
			name:       "write failed",
			err:        fmt.Errorf("error writing notes: %w", store.ErrSavingNotes),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgErrorSavingNotes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, notes := newTestRouter(t, config.Server{}, "")
			notes.EXPECT().SaveNotes(gomock.Any(), gomock.Any()).Return(false, tt.err)

			rec := doRequest(t, router, http.MethodPut, "/api/notes", saveRequest(models.Note{ID: 1}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantMsg), rec.Body.String())
		})
	}
}

// ── version ─────────────────────────────────────────────────────────────────

func TestGetHostVersion(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{}, "")

	rec := doRequest(t, router, http.MethodGet, "/api/version", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, testVersion, rec.Body.String())
}

// ── end to end ──────────────────────────────────────────────────────────────

// TestBridgeRoundTrip runs the HTTP bridge client against the real router,
// services and notes file.
func TestBridgeRoundTrip(t *testing.T) {
	const key = "round-trip-key"
	utils.InitHasherPool(key)

	path := filepath.Join(t.TempDir(), "nested", "notes.json")
	storages := store.NewStorages(config.HostStorage{NotesFile: path}, store.NewLogNotifier(logger.Nop()), logger.Nop())
	services, err := service.NewServices(storages, config.HostApp{Version: testVersion}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, config.Server{}, key, logger.Nop()).Init())
	defer srv.Close()

	bridge, err := adapter.NewHTTPBridge(config.ClientAdapter{HTTPAddress: srv.URL}, config.ClientApp{HashKey: key}, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	notes, err := bridge.GetNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes, "first load creates an empty file")
	assert.FileExists(t, path)

	want := []models.Note{{ID: 87654321, Title: "Groceries", Content: "<ul><li>milk</li></ul>"}, {ID: 12345678}}
	saved, err := bridge.SaveNotes(ctx, want)
	require.NoError(t, err)
	assert.True(t, saved)

	got, err := bridge.GetNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	badKey, err := adapter.NewHTTPBridge(config.ClientAdapter{HTTPAddress: srv.URL}, config.ClientApp{HashKey: "other"}, logger.Nop())
	require.NoError(t, err)
	_, err = badKey.SaveNotes(ctx, want[:1])
	assert.ErrorIs(t, err, adapter.ErrBadRequest)

	got, err = bridge.GetNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got, "rejected save must not touch the file")
}
