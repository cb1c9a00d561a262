package httpx

import (
	"net/http"

	"github.com/pitchscout/scout-ui-api/internal/service"
)

// DashboardHandlers serves the per-role dashboard data endpoints. Each route
// sits behind Protect with the matching role, so the session in context is
// already role-checked.
type DashboardHandlers struct {
	Svc *service.DashboardService
}

// Scout handles GET /api/scout/dashboard.
func (h *DashboardHandlers) Scout(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}
	dash, err := h.Svc.ForScout(r.Context(), session.User.ID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "dashboard_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, dash)
}

// Player handles GET /api/player/dashboard.
func (h *DashboardHandlers) Player(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}
	dash, err := h.Svc.ForPlayer(r.Context(), session.User.ID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "dashboard_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, dash)
}

// Admin handles GET /api/admin/dashboard.
func (h *DashboardHandlers) Admin(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Svc.ForAdmin(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "dashboard_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, dash)
}
