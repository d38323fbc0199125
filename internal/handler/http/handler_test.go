package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const testVersion = "1.2.3"

// newTestRouter builds the full router over a mocked notes service.
func newTestRouter(t *testing.T, cfg config.Server, hashKey string) (*chi.Mux, *mock.MockNotesHost) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesHost(ctrl)

	appInfo, err := service.NewAppInfoService(config.HostApp{Version: testVersion}, logger.Nop())
	require.NoError(t, err)

	services := &service.Services{NotesService: notes, AppInfoService: appInfo}
	return NewHandler(services, cfg, hashKey, logger.Nop()).Init(), notes
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func saveRequest(notes ...models.Note) models.SaveNotesRequest {
	return models.SaveNotesRequest{Notes: models.CloneNotes(notes), Length: len(notes)}
}
