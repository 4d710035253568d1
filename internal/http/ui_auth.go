package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	"github.com/jobdeck/jobdeck-ui/internal/service"
)

// SignInPage renders the sign-in form.
// GET /signin.
func (h *UIHandlers) SignInPage(w http.ResponseWriter, r *http.Request) {
	if !IsAnonymous(r.Context()) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	data := basePageData(r, signInMeta())
	data["RedirectURI"] = safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	h.renderPage(w, r, data)
}

// SignIn processes the sign-in form submission.
// POST /signin.
func (h *UIHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	redirectURI := safeRedirectPath(r.FormValue("redirect_uri"))

	session, err := h.AuthSvc.SignIn(r.Context(), email, password)
	if err != nil {
		h.RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			PageMeta: signInMeta(),
			Data: map[string]any{
				"Email":       email,
				"RedirectURI": redirectURI,
			},
		})
		return
	}

	h.setSessionCookie(w, r, session)
	h.redirectAfterAuth(w, r, redirectURI)
}

// SignUpPage renders the registration form.
// GET /signup.
func (h *UIHandlers) SignUpPage(w http.ResponseWriter, r *http.Request) {
	if !IsAnonymous(r.Context()) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	data := basePageData(r, signUpMeta())
	data["Role"] = string(model.RoleApplicant)
	h.renderPage(w, r, data)
}

// SignUp processes the registration form submission.
// POST /signup.
func (h *UIHandlers) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	in := service.SignUpInput{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     model.Role(r.FormValue("role")),
	}

	session, err := h.AuthSvc.SignUp(r.Context(), in)
	if err != nil {
		h.RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			PageMeta: signUpMeta(),
			Data: map[string]any{
				"Name":  in.Name,
				"Email": in.Email,
				"Role":  string(in.Role),
			},
		})
		return
	}

	h.setSessionCookie(w, r, session)
	h.redirectAfterAuth(w, r, "/dashboard")
}

// SignOut ends the session and clears the browser cookie.
// POST /signout.
func (h *UIHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if signOutErr := h.AuthSvc.SignOut(r.Context(), cookie.Value); signOutErr != nil {
			h.logger().WarnContext(r.Context(), "sign-out failed", "error", signOutErr)
		}
	}

	h.clearSessionCookie(w, r)

	if IsHTMX(r) {
		HTMX(w).Redirect("/")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func signInMeta() PageMeta {
	return PageMeta{Title: "Sign In - Jobdeck", PageTitle: "Sign In", CurrentPage: PageSignIn}
}

func signUpMeta() PageMeta {
	return PageMeta{Title: "Sign Up - Jobdeck", PageTitle: "Create Account", CurrentPage: PageSignUp}
}

// redirectAfterAuth sends the browser to its post-auth destination.
// Form posts from htmx need an Hx-Redirect for a full document navigation.
func (h *UIHandlers) redirectAfterAuth(w http.ResponseWriter, r *http.Request, target string) {
	target = safeRedirectPath(target)
	if target == "/" {
		target = "/dashboard"
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *UIHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || isForwardedHTTPS(r)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearSessionCookie clears the session cookie by setting it to expire immediately.
// It mirrors the attributes used when setting the cookie to maximize
// compatibility across browsers during deletion.
func (h *UIHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	isSecure := r.TLS != nil || isForwardedHTTPS(r)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
