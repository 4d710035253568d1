package httpx

import (
	"net/http"
	"strings"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/service"
)

// JobView renders a single listing with viewer-dependent actions.
// GET /jobs/{id}.
func (h *UIHandlers) JobView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	state := GetAuthStateFromContext(r.Context())
	view, err := h.JobSvc.Get(r.Context(), id, state.User)
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			PageMeta: PageMeta{Title: "Job - Jobdeck", PageTitle: "Job", CurrentPage: PageJob},
		})
		return
	}

	data := basePageData(r, PageMeta{
		Title:       view.Job.Title + " - Jobdeck",
		PageTitle:   view.Job.Title,
		CurrentPage: PageJob,
	})
	data["Job"] = view.Job
	data["CanManage"] = view.CanManage
	data["CanApply"] = view.CanApply
	h.renderPage(w, r, data)
}

// JobNew renders the empty post-a-job form.
// GET /jobs/new (recruiter only).
func (h *UIHandlers) JobNew(w http.ResponseWriter, r *http.Request) {
	h.renderJobForm(w, r, map[string]any{"Mode": FormModeCreate})
}

// JobEdit renders the edit form pre-filled with the listing.
// GET /jobs/{id}/edit (owning recruiter only).
func (h *UIHandlers) JobEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

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

	h.renderJobForm(w, r, map[string]any{
		"Mode":     FormModeEdit,
		"JobID":    view.Job.ID,
		"FormData": jobFormValues(*view.Job),
	})
}

// JobCreate processes the post-a-job form.
// POST /jobs (recruiter only).
func (h *UIHandlers) JobCreate(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := parseJobForm(r)
	if len(fieldErrors) > 0 {
		h.renderJobFormError(w, r, jobFormError{
			Mode:        FormModeCreate,
			FieldErrors: fieldErrors,
			Request:     req,
		})
		return
	}

	job, err := h.JobSvc.Create(r.Context(), GetSessionFromContext(r.Context()), req)
	if err != nil {
		h.renderJobFormError(w, r, jobFormError{
			Mode:    FormModeCreate,
			Err:     err,
			Request: req,
		})
		return
	}

	h.logger().InfoContext(r.Context(), "job posted", "job_id", job.ID)
	HTMX(w).Redirect("/jobs/" + job.ID)
}

// JobUpdate processes the edit form.
// POST /jobs/{id} (owning recruiter only).
func (h *UIHandlers) JobUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	req, fieldErrors := parseJobForm(r)
	if len(fieldErrors) > 0 {
		h.renderJobFormError(w, r, jobFormError{
			Mode:        FormModeEdit,
			JobID:       id,
			FieldErrors: fieldErrors,
			Request:     req,
		})
		return
	}

	job, err := h.JobSvc.Update(r.Context(), GetSessionFromContext(r.Context()), id, req)
	if err != nil {
		h.renderJobFormError(w, r, jobFormError{
			Mode:    FormModeEdit,
			JobID:   id,
			Err:     err,
			Request: req,
		})
		return
	}

	HTMX(w).Redirect("/jobs/" + job.ID)
}

// JobDelete removes a listing and returns to the dashboard.
// POST /jobs/{id}/delete (owning recruiter only).
func (h *UIHandlers) JobDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	if err := h.JobSvc.Delete(r.Context(), GetSessionFromContext(r.Context()), id); err != nil {
		triggerToast(w, friendlyErrorMessage(err), "error")
		w.WriteHeader(StatusForError(err))
		return
	}

	if !IsHTMX(r) {
		h.renderBoardAfterDelete(w, r, id)
		return
	}
	HTMX(w).Redirect("/dashboard")
}

// renderBoardAfterDelete answers a plain form post with the recruiter
// dashboard. The listing read can lag the delete, so the removed job is
// folded out of whatever it returned.
func (h *UIHandlers) renderBoardAfterDelete(w http.ResponseWriter, r *http.Request, jobID string) {
	sess := GetSessionFromContext(r.Context())
	board, err := h.DashboardSvc.Recruiter(r.Context(), sess, "")
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	board.Jobs = service.RemoveJob(board.Jobs, jobID)

	data := basePageData(r, dashboardMeta())
	data["Jobs"] = board.Jobs
	data["Applications"] = board.Applications
	data["StatusFilter"] = ""
	data["Statuses"] = model.AllStatuses()
	h.renderPage(w, r, data)
}

// JobApply submits an application for the listing.
// POST /jobs/{id}/apply (applicant only).
func (h *UIHandlers) JobApply(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	if err := h.JobSvc.Apply(r.Context(), GetSessionFromContext(r.Context()), id); err != nil {
		triggerToast(w, friendlyErrorMessage(err), "error")
		w.WriteHeader(StatusForError(err))
		return
	}

	triggerToast(w, "Application submitted.", "success")
	HTMX(w).Redirect("/dashboard")
}

// parseJobForm reads the post/edit form and reports per-field problems.
func parseJobForm(r *http.Request) (model.CreateJobRequest, map[string]string) {
	fieldErrors := map[string]string{}
	if err := r.ParseForm(); err != nil {
		fieldErrors["form"] = "Invalid form submission."
		return model.CreateJobRequest{}, fieldErrors
	}

	req := model.CreateJobRequest{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Company:     strings.TrimSpace(r.FormValue("company")),
		Location:    strings.TrimSpace(r.FormValue("location")),
		Type:        strings.TrimSpace(r.FormValue("type")),
		Experience:  strings.TrimSpace(r.FormValue("experience")),
		Salary:      strings.TrimSpace(r.FormValue("salary")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	if req.Title == "" {
		fieldErrors["title"] = "Title is required."
	}
	if req.Company == "" {
		fieldErrors["company"] = "Company is required."
	}
	if req.Location == "" {
		fieldErrors["location"] = "Location is required."
	}
	if req.Description == "" {
		fieldErrors["description"] = "Description is required."
	}
	if req.Type != "" && !validJobType(req.Type) {
		fieldErrors["type"] = "Choose a listed job type."
	}

	return req, fieldErrors
}

// jobFormValues maps a listing into the form value shape used by the template.
func jobFormValues(job model.Job) model.CreateJobRequest {
	return model.CreateJobRequest{
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Type:        job.Type,
		Experience:  job.Experience,
		Salary:      job.Salary,
		Description: job.Description,
	}
}

// renderJobForm renders the job create/edit form page with common framing data.
func (h *UIHandlers) renderJobForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: jobFormMeta,
	})
	data["JobTypes"] = jobTypes
	if _, ok := data["FormData"]; !ok {
		data["FormData"] = model.CreateJobRequest{}
	}
	h.renderPage(w, r, data)
}

func jobFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "Edit Job - Jobdeck", PageTitle: "Edit Job", CurrentPage: PageJobForm}
	}
	return PageMeta{Title: "Post a Job - Jobdeck", PageTitle: "Post a Job", CurrentPage: PageJobForm}
}

// jobFormError groups the state needed to re-render a failed job form.
type jobFormError struct {
	Mode        FormMode
	JobID       string
	Err         error
	FieldErrors map[string]string
	Request     model.CreateJobRequest
}

func (h *UIHandlers) renderJobFormError(w http.ResponseWriter, r *http.Request, form jobFormError) {
	h.RenderError(ErrorOpts{
		W: w, R: r,
		Err:         form.Err,
		FieldErrors: form.FieldErrors,
		PageMeta:    jobFormMeta(form.Mode),
		Data: map[string]any{
			"Mode":     string(form.Mode),
			"JobID":    form.JobID,
			"FormData": form.Request,
			"JobTypes": jobTypes,
		},
	})
}
