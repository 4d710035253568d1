package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strings"

	jobdeck "github.com/jobdeck/jobdeck-ui"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	"github.com/jobdeck/jobdeck-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Jobs      *service.JobService
	Profile   *service.ProfileService
	Dashboard *service.DashboardService
	// Configuration
	CookieDomain string
	IsDev        bool         // Development mode flag for hot reloading, etc.
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	// UI routes with template renderer
	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		cfg := uiRouteConfig{Handlers: uiHandlers, CookieDomain: services.CookieDomain}
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	// Wrap with NotFound handler, then session resolution and browser
	// detection. Session resolution runs for every request so public pages
	// can show signed-in navigation too.
	var handler http.Handler = &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}
	if services.Auth != nil {
		handler = ResolveSession(services.Auth, services.Logger)(handler)
	}
	return BrowserDetection()(handler)
}

// setupDevMode configures template and critical CSS filesystems for dev mode.
func setupDevMode() (fs.FS, fs.FS) {
	templateFS := os.DirFS(TemplatePathFromRoot)
	criticalCSSFS := os.DirFS("frontend/public")
	return templateFS, criticalCSSFS
}

// setupProdMode configures template and critical CSS filesystems from the embedded FS.
func setupProdMode() (fs.FS, fs.FS) {
	templateFS, err := fs.Sub(jobdeck.TemplateFS, "frontend/templates")
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		templateFS = os.DirFS(TemplatePathFromRoot)
	}

	criticalCSSFS, err := fs.Sub(jobdeck.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return templateFS, nil
	}
	return templateFS, criticalCSSFS
}

// setupUIHandlers creates UI handlers with a template renderer.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	var templateFS fs.FS
	var criticalCSSFS fs.FS

	if services.IsDev {
		templateFS, criticalCSSFS = setupDevMode()
	} else {
		templateFS, criticalCSSFS = setupProdMode()
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		CriticalCSSFS: criticalCSSFS,
		DevMode:       services.IsDev,
		Logger:        services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:            tr,
		AuthSvc:      services.Auth,
		JobSvc:       services.Jobs,
		ProfileSvc:   services.Profile,
		DashboardSvc: services.Dashboard,
		CookieDomain: services.CookieDomain,
		IsDev:        services.IsDev,
		Logger:       services.Logger,
	}
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk with fallback for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		// Dev mode: serve from disk with fallback for hot reloading
		mfs := multiFS{
			http.Dir("frontend/static"),
			http.Dir("frontend/public"),
		}
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(mfs)))
	}

	// Production mode: serve from embedded FS
	staticSub, err := fs.Sub(jobdeck.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// multiFS provides fallback filesystem for dev mode.
type multiFS []http.FileSystem

func (m multiFS) Open(name string) (http.File, error) {
	for _, fsys := range m {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		// ignore not-exist and try next, but return early on other errors
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, os.ErrNotExist
}

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	// Content-hashed filenames (e.g. app.abc12345.js, styles.def45678.css) can
	// be cached indefinitely; everything else must revalidate.
	hashedFilePattern := regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedFilePattern.MatchString(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	h.mux.ServeHTTP(cw, r)

	// If the mux didn't handle the request (404), use our custom handler
	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	// Not a 404: write the captured response
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Handlers     *UIHandlers
	CookieDomain string
}

// csrfWrap applies CSRF double-submit protection.
func (cfg uiRouteConfig) csrfWrap() func(http.Handler) http.Handler {
	return CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
}

// authWrap requires a resolved session, with CSRF protection.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	csrf := cfg.csrfWrap()
	guard := RequireAuthBrowser(cfg.Handlers)
	return func(h http.Handler) http.Handler {
		return guard(csrf(h))
	}
}

// roleWrap requires a resolved session with an exact role, with CSRF protection.
func (cfg uiRouteConfig) roleWrap(role model.Role) func(http.Handler) http.Handler {
	csrf := cfg.csrfWrap()
	guard := RequireRoleBrowser(cfg.Handlers, role)
	return func(h http.Handler) http.Handler {
		return guard(csrf(h))
	}
}

// registerUIRoutes delegates to per-domain UI route registration functions.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	registerUIAuthRoutes(mux, h, cfg)
	registerUIJobRoutes(mux, h, cfg)
	registerUIDashboardRoutes(mux, h, cfg)
	registerUIProfileRoutes(mux, h, cfg)
}

// registerUIAuthRoutes wires sign-in/sign-up/sign-out pages. These are public:
// CSRF tokens are still issued and checked, but no session is required.
func registerUIAuthRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	csrf := cfg.csrfWrap()
	mux.Handle("GET /signin", csrf(http.HandlerFunc(h.SignInPage)))
	mux.Handle("POST /signin", csrf(http.HandlerFunc(h.SignIn)))
	mux.Handle("GET /signup", csrf(http.HandlerFunc(h.SignUpPage)))
	mux.Handle("POST /signup", csrf(http.HandlerFunc(h.SignUp)))
	mux.Handle("POST /signout", csrf(http.HandlerFunc(h.SignOut)))
}

// registerUIJobRoutes wires the job board pages. Browsing is public; posting
// and editing are recruiter-only, applying is applicant-only.
func registerUIJobRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	csrf := cfg.csrfWrap()
	wrapRecruiter := cfg.roleWrap(model.RoleRecruiter)
	wrapApplicant := cfg.roleWrap(model.RoleApplicant)

	mux.Handle("GET /", csrf(http.HandlerFunc(h.Home)))
	mux.Handle("GET /jobs/{id}", csrf(http.HandlerFunc(h.JobView)))

	mux.Handle("GET /jobs/new", wrapRecruiter(http.HandlerFunc(h.JobNew)))
	mux.Handle("GET /jobs/{id}/applications", wrapRecruiter(http.HandlerFunc(h.JobApplications)))
	mux.Handle("GET /jobs/{id}/edit", wrapRecruiter(http.HandlerFunc(h.JobEdit)))
	mux.Handle("POST /jobs", wrapRecruiter(http.HandlerFunc(h.JobCreate)))
	mux.Handle("POST /jobs/{id}", wrapRecruiter(http.HandlerFunc(h.JobUpdate)))
	mux.Handle("POST /jobs/{id}/delete", wrapRecruiter(http.HandlerFunc(h.JobDelete)))

	mux.Handle("POST /jobs/{id}/apply", wrapApplicant(http.HandlerFunc(h.JobApply)))
}

// registerUIDashboardRoutes wires the role-dependent dashboard.
func registerUIDashboardRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapRecruiter := cfg.roleWrap(model.RoleRecruiter)

	mux.Handle("GET /dashboard", wrap(http.HandlerFunc(h.Dashboard)))
	mux.Handle("GET /dashboard/applications", wrapRecruiter(http.HandlerFunc(h.ApplicationsFragment)))
	mux.Handle("POST /applications/{id}/status", wrapRecruiter(http.HandlerFunc(h.ApplicationStatusUpdate)))
}

// registerUIProfileRoutes wires the role-conditional profile form.
func registerUIProfileRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /profile", wrap(http.HandlerFunc(h.ProfileEdit)))
	mux.Handle("POST /profile", wrap(http.HandlerFunc(h.ProfileSubmit)))
	mux.Handle("POST /profile/rows", wrap(http.HandlerFunc(h.ProfileAddRow)))
}
