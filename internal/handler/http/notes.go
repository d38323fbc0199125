// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	notes, err := h.services.NotesService.LoadNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNotes").Msg("error loading notes")
		utils.WriteError(w, messageFromError(err), statusFromError(err))
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}

	if _, err = utils.WriteJSON(w, notes, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getNotes").Msg("error writing response")
	}
}

func (h *Handler) saveNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SaveNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveNotes").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), req, validators.FieldLength); err != nil {
		log.Err(err).Str("func", "*Handler.saveNotes").Msg("invalid save request")
		utils.WriteError(w, messageFromError(err), statusFromError(err))
		return
	}

	if req.Notes == nil {
		req.Notes = []models.Note{}
	}

	saved, err := h.services.NotesService.SaveNotes(r.Context(), req.Notes)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveNotes").Msg("error saving notes")
		utils.WriteError(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, models.SaveNotesResponse{Saved: saved}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.saveNotes").Msg("error writing response")
	}
}
