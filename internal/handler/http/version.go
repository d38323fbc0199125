package http

import (
	"net/http"
)

func (h *Handler) getHostVersion(w http.ResponseWriter, r *http.Request) {
	hostVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(hostVersion))
}
