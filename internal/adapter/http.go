package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const notesPath = "/api/notes"

type httpBridge struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPBridge constructs the HTTP/REST implementation of [Bridge] talking
// to the host at adapterCfg.HTTPAddress. When appCfg.HashKey is set every
// save request carries an HMAC of its notes.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPBridge(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (Bridge, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBridge{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetNotes implements [Bridge] via GET /api/notes.
func (h *httpBridge) GetNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: get notes request: %w", ErrLoadingNotes, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingNotes, err)
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("%w: decode notes: %w", ErrLoadingNotes, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// SaveNotes implements [Bridge] via PUT /api/notes.
func (h *httpBridge) SaveNotes(ctx context.Context, notes []models.Note) (bool, error) {
	req, err := newSaveNotesRequest(notes, h.hashKey)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrSavingNotes, err)
	}

	var saved models.SaveNotesResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&saved).
		Put(notesPath)
	if err != nil {
		return false, fmt.Errorf("%w: save notes request: %w", ErrSavingNotes, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, fmt.Errorf("%w: %w", ErrSavingNotes, err)
	}
	if !saved.Saved {
		return false, fmt.Errorf("%w: %w", ErrSavingNotes, ErrSaveNotConfirmed)
	}

	return true, nil
}

// newSaveNotesRequest builds the save payload. The hash covers the JSON
// encoding of the notes slice and is omitted without a key.
func newSaveNotesRequest(notes []models.Note, hashKey string) (models.SaveNotesRequest, error) {
	notes = models.CloneNotes(notes)
	req := models.SaveNotesRequest{Notes: notes, Length: len(notes)}

	if hashKey == "" {
		return req, nil
	}

	payload, err := json.Marshal(notes)
	if err != nil {
		return models.SaveNotesRequest{}, fmt.Errorf("encode notes for hashing: %w", err)
	}
	req.Hash = utils.HashString(string(payload), hashKey)

	return req, nil
}
