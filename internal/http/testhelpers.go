package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the test if templates are not available.
// This centralizes the common pattern of template guard checks in tests.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// SkipIfNoTemplates checks if templates are available and skips the test if not.
// This is useful for tests that need templates but don't immediately create a renderer.
func SkipIfNoTemplates(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping integration test")
	}
}

// ContainsAll checks if a string contains all the given substrings.
// This is a common utility function used in template rendering tests.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// CreateUIHandlersForTest creates UIHandlers with a template renderer for testing.
// Returns nil if templates are not available and skips the test.
func CreateUIHandlersForTest(t *testing.T) *UIHandlers {
	t.Helper()
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return nil
	}
	return &UIHandlers{T: tr}
}

// TestUser returns a user snapshot for handler tests.
func TestUser(role model.Role) *model.User {
	return &model.User{
		ID:    "user-1",
		Name:  "Test User",
		Email: "test@example.com",
		Role:  role,
	}
}

// WithTestSession attaches a resolved session and auth state to the request
// context, the way ResolveSession would for a signed-in browser.
func WithTestSession(r *http.Request, user *model.User) *http.Request {
	sess := domainauth.Session{
		ID:        "sess-test",
		User:      user,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	ctx := SetSessionInContext(r.Context(), &sess)
	ctx = SetAuthStateInContext(ctx, domainauth.State{User: user})
	return r.WithContext(ctx)
}

// WithAnonymousState attaches a settled anonymous auth state, so guards see
// a completed session check with no user rather than a loading one.
func WithAnonymousState(r *http.Request) *http.Request {
	ctx := SetAuthStateInContext(r.Context(), domainauth.State{})
	return r.WithContext(ctx)
}

// FormRequest builds an HTMX-style form POST with values encoded in the body.
func FormRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
