package httpx

import (
	"net/http"

	"github.com/medflow/medflow/internal/service"
)

// DashboardHandlers provides HTTP handlers for the landing-page counters.
type DashboardHandlers struct {
	Svc *service.DashboardService
}

// Stats handles HTTP requests for the dashboard counters.
// GET /api/dashboard.
func (h *DashboardHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	stats, err := h.Svc.Stats(r.Context(), principal)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
