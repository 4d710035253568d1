package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/service"
)

// Dashboard renders the role-appropriate board.
// GET /dashboard. Recruiters see their listings with incoming
// applications; applicants see submitted applications and saved jobs.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	state := GetAuthStateFromContext(r.Context())

	if state.User.IsRecruiter() {
		status, ok := parseStatusFilter(w, r)
		if !ok {
			return
		}
		h.Page(w, r, PageSpec{
			Meta: dashboardMeta(),
			Fetch: func(ctx context.Context, data map[string]any) error {
				board, err := h.DashboardSvc.Recruiter(ctx, sess, status)
				if err != nil {
					return err
				}
				data["Jobs"] = board.Jobs
				data["Applications"] = board.Applications
				data["StatusFilter"] = string(board.StatusFilter)
				data["Statuses"] = model.AllStatuses()
				return nil
			},
		})
		return
	}

	h.Page(w, r, PageSpec{
		Meta: dashboardMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			board, err := h.DashboardSvc.Applicant(ctx, sess)
			if err != nil {
				return err
			}
			data["Applications"] = board.Applications
			data["SavedJobs"] = board.SavedJobs
			return nil
		},
	})
}

// ApplicationsFragment re-renders the recruiter applications table for a
// status or job filter change.
// GET /dashboard/applications?job_id=&status= (recruiter only, htmx).
func (h *UIHandlers) ApplicationsFragment(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	status, ok := parseStatusFilter(w, r)
	if !ok {
		return
	}
	jobID := strings.TrimSpace(r.URL.Query().Get("job_id"))

	apps, err := h.DashboardSvc.Applications(r.Context(), sess, jobID, status)
	if err != nil {
		triggerToast(w, friendlyErrorMessage(err), "error")
		w.WriteHeader(StatusForError(err))
		return
	}

	data := basePageData(r, dashboardMeta())
	data["Applications"] = apps
	data["StatusFilter"] = string(status)
	data["JobIDFilter"] = jobID
	data["Statuses"] = model.AllStatuses()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.t.ExecuteTemplate(w, "applications-table", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "applications fragment render")
	}
}

// ApplicationStatusUpdate moves one application to a new status and
// swaps back the updated row.
// POST /applications/{id}/status (recruiter only, htmx).
func (h *UIHandlers) ApplicationStatusUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	status, err := model.ParseStatus(r.FormValue("status"))
	if err != nil {
		triggerToast(w, "Choose a valid status.", "error")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sess := GetSessionFromContext(r.Context())
	updated, err := h.DashboardSvc.ChangeStatus(r.Context(), sess, id, status)
	if err != nil {
		triggerToast(w, friendlyErrorMessage(err), "error")
		w.WriteHeader(StatusForError(err))
		return
	}

	if !IsHTMX(r) {
		h.renderApplicationsAfterUpdate(w, r, updated)
		return
	}

	data := basePageData(r, dashboardMeta())
	data["Application"] = updated
	data["Statuses"] = model.AllStatuses()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.t.ExecuteTemplate(w, "application-row", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "application row render")
	}
}

// renderApplicationsAfterUpdate answers a plain form post with the full
// applications view for the job. The list read can lag the status
// write, so the fresh record is folded into whatever it returned.
func (h *UIHandlers) renderApplicationsAfterUpdate(w http.ResponseWriter, r *http.Request, updated *model.Application) {
	sess := GetSessionFromContext(r.Context())
	state := GetAuthStateFromContext(r.Context())

	view, err := h.JobSvc.Get(r.Context(), updated.JobID, state.User)
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	apps, err := h.DashboardSvc.Applications(r.Context(), sess, updated.JobID, "")
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	apps = service.PatchApplication(apps, updated)

	data := basePageData(r, PageMeta{
		Title:       "Applications - Jobdeck",
		PageTitle:   "Applications for " + view.Job.Title,
		CurrentPage: PageApplications,
	})
	data["Job"] = view.Job
	data["Applications"] = apps
	data["StatusFilter"] = ""
	data["JobIDFilter"] = updated.JobID
	data["Statuses"] = model.AllStatuses()
	h.renderPage(w, r, data)
}

// JobApplications renders the applicant list for one listing.
// GET /jobs/{id}/applications?status= (owning recruiter only).
func (h *UIHandlers) JobApplications(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}
	status, ok := parseStatusFilter(w, r)
	if !ok {
		return
	}

	sess := GetSessionFromContext(r.Context())
	state := GetAuthStateFromContext(r.Context())

	view, err := h.JobSvc.Get(r.Context(), id, state.User)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if !view.CanManage {
		h.Forbidden(w, r)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:       "Applications - Jobdeck",
			PageTitle:   "Applications for " + view.Job.Title,
			CurrentPage: PageApplications,
		},
		Fetch: func(ctx context.Context, data map[string]any) error {
			apps, err := h.DashboardSvc.Applications(ctx, sess, id, status)
			if err != nil {
				return err
			}
			data["Job"] = view.Job
			data["Applications"] = apps
			data["StatusFilter"] = string(status)
			data["JobIDFilter"] = id
			data["Statuses"] = model.AllStatuses()
			return nil
		},
	})
}

func dashboardMeta() PageMeta {
	return PageMeta{Title: "Dashboard - Jobdeck", PageTitle: "Dashboard", CurrentPage: PageDashboard}
}

// parseStatusFilter reads the optional status query param. Reports false
// after writing a 400 when the value is not a known status.
func parseStatusFilter(w http.ResponseWriter, r *http.Request) (model.ApplicationStatus, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("status"))
	if raw == "" || raw == "all" {
		return "", true
	}
	status, err := model.ParseStatus(raw)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: string(apperrors.ErrCodeValidation),
			Err:     err,
		})
		return "", false
	}
	return status, true
}
