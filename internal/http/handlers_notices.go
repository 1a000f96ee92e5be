package httpx

import (
	"log/slog"
	"net/http"

	"github.com/medflow/medflow/internal/ports"
)

// NoticeHandlers serves the per-session toast queue.
type NoticeHandlers struct {
	Notices ports.NoticeSource
	Logger  *slog.Logger
}

// Drain returns and clears the pending notices for the caller's session.
// GET /api/notices.
func (h *NoticeHandlers) Drain(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	notices, err := h.Notices.Drain(r.Context(), session.ID)
	if err != nil {
		// Notices are best-effort; an unreadable queue yields an empty list.
		if h.Logger != nil {
			h.Logger.WarnContext(r.Context(), "draining notices failed", "error", err)
		}
		notices = nil
	}
	if notices == nil {
		notices = []ports.Notice{}
	}
	WriteJSON(w, http.StatusOK, notices)
}
