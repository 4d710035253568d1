package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

func browserRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept", "text/html")
	return markBrowser(req)
}

func markBrowser(r *http.Request) *http.Request {
	var out *http.Request
	BrowserDetection()(http.HandlerFunc(func(_ http.ResponseWriter, rr *http.Request) {
		out = rr
	})).ServeHTTP(httptest.NewRecorder(), r)
	return out
}

func TestBrowserDetection(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		accept    string
		htmx      bool
		isBrowser bool
	}{
		{name: "html accept", path: "/", accept: "text/html", isBrowser: true},
		{name: "htmx request", path: "/dashboard", htmx: true, isBrowser: true},
		{name: "api path", path: "/api/jobs", accept: "application/json", isBrowser: false},
		{name: "json client", path: "/", accept: "application/json", isBrowser: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if tt.htmx {
				req.Header.Set("Hx-Request", "true")
			}
			req = markBrowser(req)
			if got := IsBrowserRequest(req); got != tt.isBrowser {
				t.Errorf("IsBrowserRequest = %v, want %v", got, tt.isBrowser)
			}
		})
	}
}

func TestRequireAuthBrowser_AllowsResolvedUser(t *testing.T) {
	h := &UIHandlers{}
	called := false
	guard := RequireAuthBrowser(h)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	req := browserRequest(http.MethodGet, "/dashboard")
	req = WithTestSession(req, TestUser(model.RoleApplicant))
	guard.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("authenticated request did not reach the handler")
	}
}

func TestRequireAuthBrowser_AnonymousRedirectsHome(t *testing.T) {
	h := &UIHandlers{}
	guard := RequireAuthBrowser(h)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("anonymous request reached the handler")
	}))

	req := browserRequest(http.MethodGet, "/dashboard")
	req = WithAnonymousState(req)
	w := httptest.NewRecorder()
	guard.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestRequireAuthBrowser_AnonymousHTMXGetsHxRedirect(t *testing.T) {
	h := &UIHandlers{}
	guard := RequireAuthBrowser(h)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("anonymous request reached the handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Hx-Request", "true")
	req = markBrowser(req)
	req = WithAnonymousState(req)
	w := httptest.NewRecorder()
	guard.ServeHTTP(w, req)

	if got := w.Header().Get("Hx-Redirect"); got != "/" {
		t.Errorf("Hx-Redirect = %q, want /", got)
	}
}

func TestRequireAuthBrowser_LoadingRendersPlaceholder(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	guard := RequireAuthBrowser(h)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("loading request reached the handler")
	}))

	req := browserRequest(http.MethodGet, "/dashboard")
	req = req.WithContext(SetAuthStateInContext(req.Context(), domainauth.State{Loading: true}))
	w := httptest.NewRecorder()
	guard.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); !ContainsAll(body, []string{"loading-placeholder", "/dashboard"}) {
		t.Errorf("placeholder body missing retry wiring: %s", body)
	}
}

func TestRequireRoleBrowser_ExactMatchOnly(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	called := false
	guard := RequireRoleBrowser(h, model.RoleRecruiter)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	// Recruiter passes
	req := browserRequest(http.MethodGet, "/jobs/new")
	req = WithTestSession(req, TestUser(model.RoleRecruiter))
	guard.ServeHTTP(httptest.NewRecorder(), req)
	if !called {
		t.Error("recruiter did not reach the handler")
	}

	// Applicant is forbidden, not redirected
	called = false
	req = browserRequest(http.MethodGet, "/jobs/new")
	req = WithTestSession(req, TestUser(model.RoleApplicant))
	w := httptest.NewRecorder()
	guard.ServeHTTP(w, req)
	if called {
		t.Error("applicant reached a recruiter-only handler")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/dashboard", "/dashboard"},
		{"/jobs/abc?x=1", "/jobs/abc?x=1"},
		{"https://evil.example/phish", "/"},
		{"//evil.example", "/"},
		{"dashboard", "/"},
	}
	for _, tt := range tests {
		if got := safeRedirectPath(tt.in); got != tt.want {
			t.Errorf("safeRedirectPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
