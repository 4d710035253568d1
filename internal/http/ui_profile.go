package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	"github.com/jobdeck/jobdeck-ui/internal/domain/profile"
)

// ProfileEdit renders the role-conditional profile form.
// GET /profile.
func (h *UIHandlers) ProfileEdit(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	h.Page(w, r, PageSpec{
		Meta: profileMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			edit, err := h.ProfileSvc.Load(ctx, sess)
			if err != nil {
				return err
			}
			putProfileEdit(data, edit)
			return nil
		},
	})
}

// ProfileSubmit saves the profile form.
// POST /profile.
func (h *UIHandlers) ProfileSubmit(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	edit, err := parseProfileForm(r, sess.Role())
	if err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	if _, err := h.ProfileSvc.Submit(r.Context(), sess, edit); err != nil {
		data := map[string]any{}
		putProfileEdit(data, edit)
		h.RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			PageMeta: profileMeta(),
			Data:     data,
		})
		return
	}

	h.redirectAfterAuth(w, r, "/dashboard")
}

// ProfileAddRow appends a blank education or experience row to the
// submitted form state and re-renders the form without saving.
// POST /profile/rows?field=education|workExperience (applicant only, htmx).
func (h *UIHandlers) ProfileAddRow(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	edit, err := parseProfileForm(r, sess.Role())
	if err != nil || edit.Applicant == nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	switch profile.ListField(r.URL.Query().Get("field")) {
	case profile.FieldEducation:
		edit.Applicant.AddEducation()
	case profile.FieldExperience:
		edit.Applicant.AddExperience()
	default:
		http.Error(w, "unknown form section", http.StatusBadRequest)
		return
	}

	data := basePageData(r, profileMeta())
	putProfileEdit(data, edit)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.t.ExecuteTemplate(w, "profile-form", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "profile form render")
	}
}

func profileMeta() PageMeta {
	return PageMeta{Title: "Profile - Jobdeck", PageTitle: "Your Profile", CurrentPage: PageProfile}
}

// putProfileEdit spreads the form state into template data.
func putProfileEdit(data map[string]any, edit profile.Edit) {
	data["Role"] = string(edit.Role)
	if edit.Applicant != nil {
		data["Applicant"] = edit.Applicant
	}
	if edit.Recruiter != nil {
		data["Recruiter"] = edit.Recruiter
	}
}

// parseProfileForm reconstructs the role-variant form state from the
// submitted fields. List rows arrive as indexed names such as
// "education.0.institution"; rows are materialized first, then each
// submitted key is applied as a single-entry update.
func parseProfileForm(r *http.Request, role model.Role) (profile.Edit, error) {
	if err := r.ParseForm(); err != nil {
		return profile.Edit{}, err
	}

	edit := profile.Edit{Role: role}
	if role == model.RoleRecruiter {
		edit.Recruiter = &profile.RecruiterEdit{
			Name:               strings.TrimSpace(r.FormValue("name")),
			Phone:              strings.TrimSpace(r.FormValue("phone")),
			Bio:                strings.TrimSpace(r.FormValue("bio")),
			CompanyName:        strings.TrimSpace(r.FormValue("companyName")),
			CompanyWebsite:     strings.TrimSpace(r.FormValue("companyWebsite")),
			CompanyDescription: strings.TrimSpace(r.FormValue("companyDescription")),
		}
		return edit, nil
	}

	applicant := &profile.ApplicantEdit{
		Name:   strings.TrimSpace(r.FormValue("name")),
		Phone:  strings.TrimSpace(r.FormValue("phone")),
		Bio:    strings.TrimSpace(r.FormValue("bio")),
		Skills: r.FormValue("skills"),
		Resume: strings.TrimSpace(r.FormValue("resume")),
	}
	edit.Applicant = applicant

	for range rowCount(r.PostForm, profile.FieldEducation) {
		applicant.AddEducation()
	}
	for range rowCount(r.PostForm, profile.FieldExperience) {
		applicant.AddExperience()
	}

	for name, values := range r.PostForm {
		field, index, key, ok := splitRowField(name)
		if !ok || len(values) == 0 {
			continue
		}
		if err := applicant.UpdateListEntry(field, index, key, strings.TrimSpace(values[0])); err != nil {
			// Unknown keys or indices mean a stale or tampered form.
			return profile.Edit{}, err
		}
	}

	return edit, nil
}

// rowCount returns 1 + the highest submitted row index for the field.
func rowCount(form map[string][]string, field profile.ListField) int {
	count := 0
	for name := range form {
		f, index, _, ok := splitRowField(name)
		if !ok || f != field {
			continue
		}
		if index+1 > count {
			count = index + 1
		}
	}
	return count
}

// splitRowField parses "field.index.key" form names.
func splitRowField(name string) (profile.ListField, int, string, bool) {
	parts := strings.SplitN(name, ".", 3)
	if len(parts) != 3 {
		return "", 0, "", false
	}

	field := profile.ListField(parts[0])
	if field != profile.FieldEducation && field != profile.FieldExperience {
		return "", 0, "", false
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return "", 0, "", false
	}

	return field, index, parts[2], true
}
