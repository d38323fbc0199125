package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// saveHashing verifies the HMAC carried by a save request against the JSON
// encoding of its notes. It is a pass-through when no hash key is set.
func (h *Handler) saveHashing(next http.Handler) http.Handler {
	if h.hashKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		var req models.SaveNotesRequest

		log.Debug().Str("func", "*Handler.saveHashing").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.saveHashing").Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if err = json.Unmarshal(body, &req); err != nil {
			log.Err(err).Str("func", "*Handler.saveHashing").Msg("failed to decode JSON")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		payload, err := json.Marshal(req.Notes)
		if err != nil {
			log.Err(err).Str("func", "*Handler.saveHashing").Msg("failed to marshal notes")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		if !utils.HashEqual(payload, req.Hash) {
			log.Err(ErrIntegrityCheckFailed).Str("func", "*Handler.saveHashing").
				Str("hash from request", req.Hash).
				Int("notes", len(req.Notes)).
				Msg("hashes are not equal")
			utils.WriteError(w, messageFromError(ErrIntegrityCheckFailed), statusFromError(ErrIntegrityCheckFailed))
			return
		}

		next.ServeHTTP(w, r)
	})
}
