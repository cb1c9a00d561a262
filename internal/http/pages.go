package httpx

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/pitchscout/scout-ui-api/internal/domain/nav"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists every renderable page; each is parsed together with the
// base layout at construction time so template errors surface at startup.
var pageNames = []string{"login.html", "forbidden.html", "not_found.html", "error.html", "app.html"}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// NewRenderer parses the embedded templates.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tpl
	}
	return &Renderer{pages: pages, logger: logger}, nil
}

// Render writes a page. The template executes into a buffer first so a
// mid-render failure never produces a half-written page.
func (t *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tpl, ok := t.pages[page]
	if !ok {
		t.logger.Error("unknown template", slog.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "base", data); err != nil {
		t.logger.Error("template render failed", slog.String("page", page), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		// Client is gone; nothing to recover here.
		return
	}
}

// PageHandlers serves the server-rendered pages: login, the error pages, and
// the per-role app shell the frontend mounts into.
type PageHandlers struct {
	T *Renderer
}

// Login renders the sign-in page. The msg and from query params come from
// guard redirects and are surfaced to the user.
// GET /login.
func (h *PageHandlers) Login(w http.ResponseWriter, r *http.Request) {
	from := safeRedirectPath(r.URL.Query().Get("from"))
	if from == "/" {
		from = ""
	}
	h.T.Render(w, http.StatusOK, "login.html", map[string]any{
		"Title":   "Sign in",
		"Message": r.URL.Query().Get("msg"),
		"From":    from,
	})
}

// Forbidden renders the access-denied page with the deny context carried in
// the redirect's query params.
// GET /403.
func (h *PageHandlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	h.T.Render(w, http.StatusForbidden, "forbidden.html", map[string]any{
		"Title":    "Access denied",
		"Message":  r.URL.Query().Get("msg"),
		"Role":     role,
		"From":     safeRedirectPath(r.URL.Query().Get("from")),
		"HomePath": nav.DashboardPathForRaw(role),
	})
}

// App renders the application shell for any protected page: sidebar from the
// role's navigation table, breadcrumbs derived from the request path, and a
// mount point for the frontend.
func (h *PageHandlers) App(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		// Protect should have redirected already; treat as a plain miss.
		http.Redirect(w, r, nav.LoginPath, http.StatusSeeOther)
		return
	}

	sections := nav.NavigationFor(session.Role)
	crumbs := nav.FromNavigation(r.URL.Path, sections)
	title := "Dashboard"
	if len(crumbs) > 0 {
		title = crumbs[len(crumbs)-1].Label
	}

	h.T.Render(w, http.StatusOK, "app.html", map[string]any{
		"Title":    title,
		"Role":     session.Role,
		"Path":     r.URL.Path,
		"Sections": sections,
		"Crumbs":   crumbs,
	})
}

// accountPageMessages maps the public account-flow paths to the explanation
// shown on them. Account management itself lives with the identity provider;
// these pages only orient users who land on the old SPA routes.
var accountPageMessages = map[string]string{
	"/register":        "Accounts are provisioned through your club's single sign-on. Sign in to continue.",
	"/forgot-password": "Password resets are handled by your identity provider. Sign in to continue.",
	"/check-email":     "Check your inbox for a confirmation link, then sign in.",
	"/verify-email":    "Your email address has been verified. Sign in to continue.",
}

// AccountInfo renders the account-flow pages (register, forgot-password,
// check-email, verify-email) as a sign-in page with an explanatory message.
func (h *PageHandlers) AccountInfo(w http.ResponseWriter, r *http.Request) {
	msg, ok := accountPageMessages[r.URL.Path]
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.T.Render(w, http.StatusOK, "login.html", map[string]any{
		"Title":   "Sign in",
		"Message": msg,
	})
}

// NotFound renders the 404 page.
func (h *PageHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.T.Render(w, http.StatusNotFound, "not_found.html", map[string]any{"Title": "Not found"})
}

// ServerError renders the 500 page.
func (h *PageHandlers) ServerError(w http.ResponseWriter, r *http.Request) {
	h.T.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Title": "Error"})
}

var (
	fallbackRenderer     *Renderer
	fallbackRendererOnce sync.Once
)

// NotFound is the package-level 404 used where no PageHandlers instance is
// wired. It lazily parses the embedded templates; a parse failure degrades to
// the stdlib response.
func NotFound(w http.ResponseWriter, r *http.Request) {
	fallbackRendererOnce.Do(func() {
		t, err := NewRenderer(nil)
		if err == nil {
			fallbackRenderer = t
		}
	})
	if fallbackRenderer == nil {
		http.NotFound(w, r)
		return
	}
	(&PageHandlers{T: fallbackRenderer}).NotFound(w, r)
}
