package http

import (
	"net/http"

	"github.com/MKhiriev/go-inbox-pilot/internal/utils"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// root is the liveness greeting the frontend pings on load.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Hello from the Inbox Pilot backend!"}, http.StatusOK)
}

// hello mirrors root under the /api prefix for clients that only reach the
// proxied path.
func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Hello from the backend API!"}, http.StatusOK)
}

// storageDiagnostics reports backend and database health. It never fails:
// a broken database shows up inside the report, not as an error status.
func (h *Handler) storageDiagnostics(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticsService.Report(r.Context())

	utils.WriteJSON(w, report, http.StatusOK)
}
