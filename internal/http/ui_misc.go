package httpx

import (
	"errors"
	"net/http"
)

// NotFound handles 404 errors with auth-aware behavior.
// For browser requests, it renders an HTML error page.
// For API requests, it returns a JSON error response.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		h.renderBrowserNotFound(w, r)
	} else {
		h.renderAPINotFound(w, r)
	}
}

// renderBrowserNotFound renders an HTML 404 page with auth-aware content.
func (h *UIHandlers) renderBrowserNotFound(w http.ResponseWriter, r *http.Request) {
	state := GetAuthStateFromContext(r.Context())

	data := map[string]any{
		"Title":           "Page Not Found - Jobdeck",
		"Code":            "404",
		"Message":         "The page you're looking for doesn't exist.",
		"IsAuthenticated": state.User != nil,
		"ShowSignIn":      state.User == nil,
		"RedirectURI":     safeRedirectPath(r.URL.RequestURI()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if h.T != nil {
		if err := h.T.RenderError(w, r, data); err != nil {
			// Fallback to plain text if template rendering fails
			http.Error(w, "Page not found", http.StatusNotFound)
		}
	} else {
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}

// renderAPINotFound renders a JSON 404 response.
func (h *UIHandlers) renderAPINotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     errors.New("not found"),
	})
}

// Forbidden renders an HTML 403 page for browser requests that fail a role check.
func (h *UIHandlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	state := GetAuthStateFromContext(r.Context())

	data := map[string]any{
		"Title":           "Access Denied - Jobdeck",
		"Code":            "403",
		"Message":         "You don't have permission to access this page.",
		"IsAuthenticated": state.User != nil,
		"ShowSignIn":      state.User == nil,
		"RedirectURI":     "/",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	if h.T == nil || h.T.RenderError(w, r, data) != nil {
		http.Error(w, "Access denied", http.StatusForbidden)
	}
}

// LoadingPlaceholder renders the interstitial shown while the startup session
// check is still in flight. The page re-requests itself so the visitor lands
// on the real content once the shared check resolves.
func (h *UIHandlers) LoadingPlaceholder(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{
		Title:       "Loading - Jobdeck",
		PageTitle:   "Loading",
		CurrentPage: PageLoading,
	})
	data["RetryPath"] = safeRedirectPath(r.URL.RequestURI())
	h.renderPage(w, r, data)
}
