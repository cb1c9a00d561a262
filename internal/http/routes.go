package httpx

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/service"
)

//go:embed static
var staticFS embed.FS

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       AuthServiceInterface
	Scout      *service.ScoutService
	Search     *service.SearchService
	Dashboards *service.DashboardService
	// Mapper normalizes raw roles for the guard; the zero value is the
	// lenient production mapper.
	Mapper       domainauth.RoleMapper
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router: public pages, auth flow,
// the guarded per-role trees and the JSON API.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := NewRenderer(logger)
	if err != nil {
		return nil, err
	}

	tokens := TokenStore{CookieDomain: services.CookieDomain}
	guard := &Guard{Auth: services.Auth, Tokens: tokens, Mapper: services.Mapper, Logger: logger}

	pages := &PageHandlers{T: renderer}
	authHandlers := &AuthHandlers{Svc: services.Auth, Tokens: tokens, Logger: logger}
	scoutHandlers := &ScoutHandlers{Scout: services.Scout, Search: services.Search}
	dashHandlers := &DashboardHandlers{Svc: services.Dashboards}

	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	registerAuthRoutes(mux, authHandlers)
	registerPageRoutes(mux, pages, guard)
	registerAPIRoutes(mux, guard, scoutHandlers, dashHandlers)

	mux.Handle("GET /static/", staticHandler())

	// Everything unmatched, "/" included, lands on the root redirect which
	// renders the 404 page for non-root paths.
	mux.HandleFunc("/", guard.RedirectRoot)

	return Recover(logger)(Logging(logger)(mux)), nil
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.BeginLogin)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// registerPageRoutes wires the server-rendered pages: the public login and
// access-denied pages plus the three guarded role trees.
func registerPageRoutes(mux *http.ServeMux, pages *PageHandlers, g *Guard) {
	mux.HandleFunc("GET /login", pages.Login)
	mux.HandleFunc("GET /403", pages.Forbidden)
	mux.HandleFunc("GET /404", pages.NotFound)
	mux.HandleFunc("GET /500", pages.ServerError)

	// Legacy account-flow routes; account management lives with the IdP.
	mux.HandleFunc("GET /register", pages.AccountInfo)
	mux.HandleFunc("GET /forgot-password", pages.AccountInfo)
	mux.HandleFunc("GET /check-email", pages.AccountInfo)
	mux.HandleFunc("GET /verify-email", pages.AccountInfo)

	app := http.HandlerFunc(pages.App)
	mux.Handle("GET /admin/", g.Protect(domainauth.RoleAdmin)(app))
	mux.Handle("GET /player/", g.Protect(domainauth.RolePlayer)(app))
	mux.Handle("GET /scout/", g.Protect(domainauth.RoleScout)(app))
}

func registerAPIRoutes(mux *http.ServeMux, g *Guard, scout *ScoutHandlers, dash *DashboardHandlers) {
	anyRole := g.Protect()
	adminOnly := g.Protect(domainauth.RoleAdmin)
	playerOnly := g.Protect(domainauth.RolePlayer)
	scoutOnly := g.Protect(domainauth.RoleScout)

	mux.Handle("GET /api/navigation", anyRole(http.HandlerFunc(Navigation)))
	mux.Handle("GET /api/breadcrumbs", anyRole(http.HandlerFunc(Breadcrumbs)))

	mux.Handle("GET /api/admin/dashboard", adminOnly(http.HandlerFunc(dash.Admin)))
	mux.Handle("GET /api/player/dashboard", playerOnly(http.HandlerFunc(dash.Player)))
	mux.Handle("GET /api/scout/dashboard", scoutOnly(http.HandlerFunc(dash.Scout)))

	mux.Handle("GET /api/scout/favorites", scoutOnly(http.HandlerFunc(scout.ListFavorites)))
	mux.Handle("POST /api/scout/favorites", scoutOnly(http.HandlerFunc(scout.AddFavorite)))
	mux.Handle("DELETE /api/scout/favorites/{playerID}", scoutOnly(http.HandlerFunc(scout.RemoveFavorite)))

	mux.Handle("GET /api/scout/reports", scoutOnly(http.HandlerFunc(scout.ListReports)))
	mux.Handle("POST /api/scout/reports", scoutOnly(http.HandlerFunc(scout.CreateReport)))
	mux.Handle("PATCH /api/scout/reports/{reportID}", scoutOnly(http.HandlerFunc(scout.UpdateReport)))
	mux.Handle("DELETE /api/scout/reports/{reportID}", scoutOnly(http.HandlerFunc(scout.DeleteReport)))

	mux.Handle("GET /api/scout/searches", scoutOnly(http.HandlerFunc(scout.ListSearches)))
	mux.Handle("POST /api/scout/searches", scoutOnly(http.HandlerFunc(scout.CreateSearch)))
	mux.Handle("POST /api/scout/searches/{searchID}/run", scoutOnly(http.HandlerFunc(scout.RunSearch)))
	mux.Handle("DELETE /api/scout/searches/{searchID}", scoutOnly(http.HandlerFunc(scout.DeleteSearch)))
	mux.Handle("POST /api/scout/search/run", scoutOnly(http.HandlerFunc(scout.RunAdHocSearch)))
}

// staticHandler serves the embedded assets with immutable-friendly caching
// left to the reverse proxy; the app ships only a handful of files.
func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embed is part of the binary; a bad sub path is a build bug.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
