package httpx

import (
	"errors"
	"net/http"

	"github.com/pitchscout/scout-ui-api/internal/domain/nav"
)

// Navigation returns the sidebar sections for the caller's mapped role.
// GET /api/navigation.
func Navigation(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"role":     session.Role,
		"sections": nav.NavigationFor(session.Role),
	})
}

// Breadcrumbs derives the breadcrumb trail for a path against the caller's
// navigation table.
// GET /api/breadcrumbs?path=/scout/players.
func Breadcrumbs(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_path",
			Err: errors.New("path query parameter is required")})
		return
	}

	crumbs := nav.FromNavigation(path, nav.NavigationFor(session.Role))
	WriteJSON(w, http.StatusOK, map[string]any{"crumbs": crumbs})
}
