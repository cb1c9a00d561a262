package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pitchscout/scout-ui-api/internal/adapters/postgres"
	"github.com/pitchscout/scout-ui-api/internal/service"
)

// ScoutHandlers provides the scout tool endpoints: favorites, reports and
// saved searches. All routes sit behind Protect(RoleScout), so a session is
// always in context.
type ScoutHandlers struct {
	Scout  *service.ScoutService
	Search *service.SearchService
}

// ListFavorites handles GET /api/scout/favorites.
func (h *ScoutHandlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}
	favorites, err := h.Scout.ListFavorites(r.Context(), session.User.ID)
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"favorites": favorites})
}

// AddFavorite handles POST /api/scout/favorites.
func (h *ScoutHandlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	var req struct {
		PlayerID string `json:"player_id"`
		Note     string `json:"note"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	fav, err := h.Scout.AddFavorite(r.Context(), session.User.ID, req.PlayerID, req.Note)
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, fav)
}

// RemoveFavorite handles DELETE /api/scout/favorites/{playerID}.
func (h *ScoutHandlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	removed, err := h.Scout.RemoveFavorite(r.Context(), session.User.ID, r.PathValue("playerID"))
	if err != nil {
		writeScoutError(w, err)
		return
	}
	if !removed {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found",
			Err: errors.New("favorite not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListReports handles GET /api/scout/reports?limit=&offset=.
func (h *ScoutHandlers) ListReports(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	reports, err := h.Scout.ListReports(r.Context(), session.User.ID, limit, offset)
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

// CreateReport handles POST /api/scout/reports.
func (h *ScoutHandlers) CreateReport(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	var req struct {
		PlayerID     string `json:"player_id"`
		Title        string `json:"title"`
		Body         string `json:"body"`
		HighlightURL string `json:"highlight_url"`
		Submit       bool   `json:"submit"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	rep, err := h.Scout.CreateReport(r.Context(), service.CreateReportInput{
		ScoutID:      session.User.ID,
		PlayerID:     req.PlayerID,
		Title:        req.Title,
		Body:         req.Body,
		HighlightURL: req.HighlightURL,
		Submit:       req.Submit,
	})
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, rep)
}

// UpdateReport handles PATCH /api/scout/reports/{reportID}.
func (h *ScoutHandlers) UpdateReport(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Title        *string `json:"title"`
		Body         *string `json:"body"`
		HighlightURL *string `json:"highlight_url"`
		Submit       bool    `json:"submit"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	rep, err := h.Scout.UpdateReport(r.Context(), session.User.ID, r.PathValue("reportID"), service.UpdateReportInput{
		Title:        req.Title,
		Body:         req.Body,
		HighlightURL: req.HighlightURL,
		Submit:       req.Submit,
	})
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rep)
}

// DeleteReport handles DELETE /api/scout/reports/{reportID}.
func (h *ScoutHandlers) DeleteReport(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	deleted, err := h.Scout.DeleteReport(r.Context(), session.User.ID, r.PathValue("reportID"))
	if err != nil {
		writeScoutError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found",
			Err: errors.New("report not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSearches handles GET /api/scout/searches.
func (h *ScoutHandlers) ListSearches(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}
	searches, err := h.Search.ListSavedSearches(r.Context(), session.User.ID)
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"searches": searches})
}

// CreateSearch handles POST /api/scout/searches.
func (h *ScoutHandlers) CreateSearch(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Name       string `json:"name"`
		Expression string `json:"expression"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	search, err := h.Search.CreateSavedSearch(r.Context(), session.User.ID, req.Name, req.Expression)
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, search)
}

// RunSearch handles POST /api/scout/searches/{searchID}/run.
func (h *ScoutHandlers) RunSearch(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	players, err := h.Search.RunSavedSearch(r.Context(), session.User.ID, r.PathValue("searchID"))
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"players": players})
}

// RunAdHocSearch handles POST /api/scout/search/run: run an expression
// without saving it first.
func (h *ScoutHandlers) RunAdHocSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Expression string `json:"expression"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	players, err := h.Search.RunExpression(r.Context(), req.Expression)
	if err != nil {
		writeScoutError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"players": players})
}

// DeleteSearch handles DELETE /api/scout/searches/{searchID}.
func (h *ScoutHandlers) DeleteSearch(w http.ResponseWriter, r *http.Request) {
	session, ok := mustSession(w, r)
	if !ok {
		return
	}

	deleted, err := h.Search.DeleteSavedSearch(r.Context(), session.User.ID, r.PathValue("searchID"))
	if err != nil {
		writeScoutError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found",
			Err: errors.New("saved search not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeScoutError maps domain and repository sentinels to HTTP codes.
func writeScoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, postgres.ErrDuplicateFavorite):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "duplicate_favorite", Err: err})
	case errors.Is(err, postgres.ErrSearchNameExists):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "duplicate_search_name", Err: err})
	case errors.Is(err, postgres.ErrReportNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case errors.Is(err, service.ErrHighlightHostNotAllowed):
		WriteError(w, ErrorParams{Code: http.StatusUnprocessableEntity, ErrCode: "highlight_host_not_allowed", Err: err})
	case errors.Is(err, service.ErrBadSearchExpression):
		WriteError(w, ErrorParams{Code: http.StatusUnprocessableEntity, ErrCode: "bad_search_expression", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
	}
}

func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
