package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/mocks"
	authmocks "github.com/jobdeck/jobdeck-ui/internal/mocks/auth"
	"github.com/jobdeck/jobdeck-ui/internal/service"
)

// newTestHandlers wires UIHandlers to real services over a mocked upstream
// client, with the real template tree.
func newTestHandlers(t *testing.T, client *mocks.MockJobBoardClient) *UIHandlers {
	t.Helper()
	h := CreateUIHandlersForTest(t)
	jobs := service.NewJobService(service.JobServiceOptions{Client: client})
	h.JobSvc = jobs
	h.DashboardSvc = service.NewDashboardService(service.DashboardServiceOptions{Client: client, Jobs: jobs})
	return h
}

func sampleJobs() []model.Job {
	return []model.Job{
		{ID: "job-1", Title: "Backend Engineer", Company: "Acme", Location: "Remote", Type: "full-time", RecruiterID: "user-1"},
		{ID: "job-2", Title: "SRE", Company: "Globex", Location: "Berlin", Type: "contract", RecruiterID: "someone-else"},
	}
}

func TestHome_FullPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	client.EXPECT().ListJobs(gomock.Any(), model.JobFilters{}).Return(sampleJobs(), nil)

	req := browserRequest(http.MethodGet, "/")
	req = WithAnonymousState(req)
	w := httptest.NewRecorder()
	h.Home(w, req)

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	if !ContainsAll(body, []string{"<!DOCTYPE html>", "Open Positions", "Backend Engineer", "SRE", "/signin"}) {
		t.Errorf("full home page missing expected markup:\n%s", body)
	}
}

func TestHome_HTMXPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	client.EXPECT().ListJobs(gomock.Any(), model.JobFilters{Search: "go"}).Return(sampleJobs()[:1], nil)

	req := httptest.NewRequest(http.MethodGet, "/?search=go", nil)
	req.Header.Set("Hx-Request", "true")
	req = markBrowser(req)
	req = WithAnonymousState(req)
	w := httptest.NewRecorder()
	h.Home(w, req)

	body := w.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>")
	if !ContainsAll(body, []string{"<title>Jobdeck - Find Your Next Role</title>", `hx-swap-oob="outerHTML"`, "Backend Engineer"}) {
		t.Errorf("partial response missing title/OOB header/content:\n%s", body)
	}
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "nav:activate")
}

func TestHome_UpstreamErrorShowsFriendlyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	client.EXPECT().ListJobs(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Unavailable("upstream down"))

	req := browserRequest(http.MethodGet, "/")
	req = WithAnonymousState(req)
	w := httptest.NewRecorder()
	h.Home(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unreachable right now")
}

func TestJobView_AnonymousSeesSignInPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	job := sampleJobs()[0]
	client.EXPECT().GetJob(gomock.Any(), "job-1").Return(&job, nil)

	req := browserRequest(http.MethodGet, "/jobs/job-1")
	req.SetPathValue("id", "job-1")
	req = WithAnonymousState(req)
	w := httptest.NewRecorder()
	h.JobView(w, req)

	body := w.Body.String()
	if !ContainsAll(body, []string{"Backend Engineer", "Sign in to apply"}) {
		t.Errorf("anonymous job view missing sign-in prompt:\n%s", body)
	}
	assert.NotContains(t, body, "Apply Now")
}

func TestJobView_OwnerSeesManageActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	job := sampleJobs()[0] // owned by user-1
	client.EXPECT().GetJob(gomock.Any(), "job-1").Return(&job, nil)

	req := browserRequest(http.MethodGet, "/jobs/job-1")
	req.SetPathValue("id", "job-1")
	req = WithTestSession(req, TestUser(model.RoleRecruiter))
	w := httptest.NewRecorder()
	h.JobView(w, req)

	body := w.Body.String()
	if !ContainsAll(body, []string{"/jobs/job-1/edit", "/jobs/job-1/applications", "/jobs/job-1/delete"}) {
		t.Errorf("owner job view missing manage actions:\n%s", body)
	}
}

func TestJobView_UnknownJobRendersNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	client.EXPECT().GetJob(gomock.Any(), "nope").
		Return(nil, apperrors.NotFound("job not found"))

	req := browserRequest(http.MethodGet, "/jobs/nope")
	req.SetPathValue("id", "nope")
	req = WithAnonymousState(req)
	w := httptest.NewRecorder()
	h.JobView(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboard_Recruiter(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	client.EXPECT().ListJobs(gomock.Any(), model.JobFilters{}).Return(sampleJobs(), nil)
	client.EXPECT().ListApplications(gomock.Any(), gomock.Any(), "", model.ApplicationStatus("")).
		Return([]model.Application{
			{ID: "app-1", JobID: "job-1", JobTitle: "Backend Engineer", Status: model.StatusApplied,
				Applicant: model.ApplicantSnapshot{Name: "Ada Lovelace", Email: "ada@example.com"}},
		}, nil)

	req := browserRequest(http.MethodGet, "/dashboard")
	req = WithTestSession(req, TestUser(model.RoleRecruiter))
	w := httptest.NewRecorder()
	h.Dashboard(w, req)

	body := w.Body.String()
	if !ContainsAll(body, []string{"Your Listings", "Backend Engineer", "Ada Lovelace"}) {
		t.Errorf("recruiter dashboard incomplete:\n%s", body)
	}
	// Listings not owned by the signed-in recruiter stay off the board.
	assert.NotContains(t, body, "Globex")
}

func TestDashboard_Applicant(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	client.EXPECT().ListOwnApplications(gomock.Any(), gomock.Any()).
		Return([]model.Application{
			{ID: "app-1", JobID: "job-2", JobTitle: "SRE", Company: "Globex", Status: model.StatusShortlisted},
		}, nil)
	client.EXPECT().ListSavedJobs(gomock.Any(), gomock.Any()).Return(sampleJobs()[:1], nil)

	req := browserRequest(http.MethodGet, "/dashboard")
	req = WithTestSession(req, TestUser(model.RoleApplicant))
	w := httptest.NewRecorder()
	h.Dashboard(w, req)

	body := w.Body.String()
	if !ContainsAll(body, []string{"Your Applications", "SRE", "Shortlisted", "Saved Jobs", "Backend Engineer"}) {
		t.Errorf("applicant dashboard incomplete:\n%s", body)
	}
}

func TestSignInPage(t *testing.T) {
	h := CreateUIHandlersForTest(t)

	req := browserRequest(http.MethodGet, "/signin")
	req = WithAnonymousState(req)
	w := httptest.NewRecorder()
	h.SignInPage(w, req)

	body := w.Body.String()
	if !ContainsAll(body, []string{`name="email"`, `name="password"`, `action="/signin"`, "/signup"}) {
		t.Errorf("sign-in page missing form fields:\n%s", body)
	}
}

func TestNotFound_BrowserGets404Page(t *testing.T) {
	h := CreateUIHandlersForTest(t)

	req := browserRequest(http.MethodGet, "/no-such-page")
	w := httptest.NewRecorder()
	h.NotFound(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestNotFound_APIGetsJSON(t *testing.T) {
	h := CreateUIHandlersForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	req.Header.Set("Accept", "application/json")
	req = markBrowser(req)
	w := httptest.NewRecorder()
	h.NotFound(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

// newProfileHandlers wires a ProfileService over memory stores so the
// submit flow runs end to end against the mocked upstream.
func newProfileHandlers(t *testing.T, client *mocks.MockJobBoardClient) *UIHandlers {
	t.Helper()
	h := CreateUIHandlersForTest(t)
	auth := service.NewAuthService(service.AuthServiceOptions{
		Client:   client,
		Sessions: authmocks.NewMemorySessionStore(),
		Users:    authmocks.NewMemoryUserCache(),
	})
	h.ProfileSvc = service.NewProfileService(service.ProfileServiceOptions{
		Client: client,
		Auth:   auth,
		Users:  authmocks.NewMemoryUserCache(),
	})
	return h
}

func TestProfileSubmit_HTMXRedirectsToDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newProfileHandlers(t, client)

	client.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.User{ID: "user-1", Name: "Test User", Role: model.RoleRecruiter}, nil)

	req := FormRequest(http.MethodPost, "/profile", url.Values{
		"name":        {"Test User"},
		"companyName": {"Acme"},
	})
	req.Header.Set("Hx-Request", "true")
	req = markBrowser(req)
	req = WithTestSession(req, TestUser(model.RoleRecruiter))
	w := httptest.NewRecorder()
	h.ProfileSubmit(w, req)

	assert.Equal(t, "/dashboard", w.Header().Get("Hx-Redirect"))
}

func TestProfileSubmit_PlainPostRedirectsToDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newProfileHandlers(t, client)

	client.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.User{ID: "user-1", Name: "Test User", Role: model.RoleRecruiter}, nil)

	req := FormRequest(http.MethodPost, "/profile", url.Values{
		"name":        {"Test User"},
		"companyName": {"Acme"},
	})
	req = markBrowser(req)
	req = WithTestSession(req, TestUser(model.RoleRecruiter))
	w := httptest.NewRecorder()
	h.ProfileSubmit(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestApplicationStatusUpdate_HTMXSwapsRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	client.EXPECT().UpdateApplicationStatus(gomock.Any(), gomock.Any(), "app-1", model.StatusShortlisted).
		Return(&model.Application{
			ID: "app-1", JobID: "job-1", JobTitle: "Backend Engineer", Status: model.StatusShortlisted,
			Applicant: model.ApplicantSnapshot{Name: "Ada Lovelace", Email: "ada@example.com"},
		}, nil)

	req := FormRequest(http.MethodPost, "/applications/app-1/status", url.Values{"status": {"shortlisted"}})
	req.Header.Set("Hx-Request", "true")
	req.SetPathValue("id", "app-1")
	req = markBrowser(req)
	req = WithTestSession(req, TestUser(model.RoleRecruiter))
	w := httptest.NewRecorder()
	h.ApplicationStatusUpdate(w, req)

	body := w.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>")
	if !ContainsAll(body, []string{`id="application-app-1"`, `value="shortlisted" selected`}) {
		t.Errorf("row swap missing updated markup:\n%s", body)
	}
}

func TestApplicationStatusUpdate_PlainFormShowsUpdatedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	client.EXPECT().UpdateApplicationStatus(gomock.Any(), gomock.Any(), "app-1", model.StatusShortlisted).
		Return(&model.Application{
			ID: "app-1", JobID: "job-1", JobTitle: "Backend Engineer", Status: model.StatusShortlisted,
			Applicant: model.ApplicantSnapshot{Name: "Ada Lovelace", Email: "ada@example.com"},
		}, nil)
	job := sampleJobs()[0]
	client.EXPECT().GetJob(gomock.Any(), "job-1").Return(&job, nil)
	// The list read still reports the old status; the response must
	// carry the one just written.
	client.EXPECT().ListApplications(gomock.Any(), gomock.Any(), "job-1", model.ApplicationStatus("")).
		Return([]model.Application{
			{ID: "app-1", JobID: "job-1", JobTitle: "Backend Engineer", Status: model.StatusApplied,
				Applicant: model.ApplicantSnapshot{Name: "Ada Lovelace", Email: "ada@example.com"}},
		}, nil)

	req := FormRequest(http.MethodPost, "/applications/app-1/status", url.Values{"status": {"shortlisted"}})
	req.SetPathValue("id", "app-1")
	req = markBrowser(req)
	req = WithTestSession(req, TestUser(model.RoleRecruiter))
	w := httptest.NewRecorder()
	h.ApplicationStatusUpdate(w, req)

	body := w.Body.String()
	if !ContainsAll(body, []string{"<!DOCTYPE html>", "Applications for Backend Engineer", `value="shortlisted" selected`}) {
		t.Errorf("plain form response missing full page with updated status:\n%s", body)
	}
}

func TestJobDelete_PlainFormShowsBoardWithoutListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobBoardClient(ctrl)
	h := newTestHandlers(t, client)

	job := sampleJobs()[0] // owned by user-1
	client.EXPECT().GetJob(gomock.Any(), "job-1").Return(&job, nil)
	client.EXPECT().DeleteJob(gomock.Any(), gomock.Any(), "job-1").Return(nil)
	// The listing read still includes the deleted job; the board must
	// not.
	client.EXPECT().ListJobs(gomock.Any(), model.JobFilters{}).Return(sampleJobs(), nil)
	client.EXPECT().ListApplications(gomock.Any(), gomock.Any(), "", model.ApplicationStatus("")).
		Return(nil, nil)

	req := FormRequest(http.MethodPost, "/jobs/job-1/delete", nil)
	req.SetPathValue("id", "job-1")
	req = markBrowser(req)
	req = WithTestSession(req, TestUser(model.RoleRecruiter))
	w := httptest.NewRecorder()
	h.JobDelete(w, req)

	body := w.Body.String()
	if !ContainsAll(body, []string{"<!DOCTYPE html>", "Your Listings", "You haven't posted any jobs yet."}) {
		t.Errorf("plain delete response missing dashboard markup:\n%s", body)
	}
	assert.NotContains(t, body, "Backend Engineer")
}

func TestLoadingPlaceholder_RetriesCurrentPath(t *testing.T) {
	h := CreateUIHandlersForTest(t)

	req := browserRequest(http.MethodGet, "/profile")
	w := httptest.NewRecorder()
	h.LoadingPlaceholder(w, req)

	body := w.Body.String()
	if !ContainsAll(body, []string{`hx-get="/profile"`, "load delay"}) {
		t.Errorf("loading placeholder missing retry attributes:\n%s", body)
	}
}
