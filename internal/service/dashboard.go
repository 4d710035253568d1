package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/ports"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Client ports.JobBoardClient
	Jobs   *JobService
	Logger *slog.Logger
}

// DashboardService assembles the role-specific dashboards and the
// recruiter's application review flow.
type DashboardService struct {
	client ports.JobBoardClient
	jobs   *JobService
	logger *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{client: opts.Client, jobs: opts.Jobs, logger: logger}
}

// RecruiterBoard is the recruiter dashboard: the recruiter's own
// listings plus the applications to them.
type RecruiterBoard struct {
	Jobs         []model.Job
	Applications []model.Application
	// StatusFilter echoes the active server-side status filter; zero
	// means all statuses.
	StatusFilter model.ApplicationStatus
}

// Recruiter builds the recruiter dashboard. The listings and the
// application feed load concurrently. Only jobs owned by the caller
// make the board regardless of what the public listing returns.
func (s *DashboardService) Recruiter(ctx context.Context, sess *domainauth.Session, status model.ApplicationStatus) (RecruiterBoard, error) {
	if err := requireRecruiter(sess); err != nil {
		return RecruiterBoard{}, err
	}
	if status != "" && !status.Valid() {
		return RecruiterBoard{}, apperrors.Validationf("invalid application status %q", status)
	}

	var board RecruiterBoard
	board.StatusFilter = status

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listings, err := s.jobs.List(gctx, model.JobFilters{})
		if err != nil {
			return err
		}
		board.Jobs = ownedJobs(listings, sess.User.ID)
		return nil
	})
	g.Go(func() error {
		apps, err := s.client.ListApplications(gctx, sess.Credentials, "", status)
		if err != nil {
			return err
		}
		board.Applications = apps
		return nil
	})
	if err := g.Wait(); err != nil {
		return RecruiterBoard{}, err
	}
	return board, nil
}

// Applications returns the applications to the recruiter's jobs,
// optionally narrowed to one job. The status filter runs upstream, so
// changing it is a refetch rather than a local reslice.
func (s *DashboardService) Applications(ctx context.Context, sess *domainauth.Session, jobID string, status model.ApplicationStatus) ([]model.Application, error) {
	if err := requireRecruiter(sess); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, apperrors.Validationf("invalid application status %q", status)
	}
	return s.client.ListApplications(ctx, sess.Credentials, jobID, status)
}

// ChangeStatus moves one application to a new status and returns the
// updated record so the caller can patch its list in place.
func (s *DashboardService) ChangeStatus(ctx context.Context, sess *domainauth.Session, applicationID string, status model.ApplicationStatus) (*model.Application, error) {
	if err := requireRecruiter(sess); err != nil {
		return nil, err
	}

	app, err := s.client.UpdateApplicationStatus(ctx, sess.Credentials, applicationID, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info("application status changed",
		"application_id", applicationID, "status", status, "recruiter_id", sess.User.ID)
	return app, nil
}

// ApplicantBoard is the applicant dashboard: submitted applications
// and saved listings, fetched concurrently.
type ApplicantBoard struct {
	Applications []model.Application
	SavedJobs    []model.Job
}

// Applicant builds the applicant dashboard.
func (s *DashboardService) Applicant(ctx context.Context, sess *domainauth.Session) (ApplicantBoard, error) {
	if sess == nil || sess.User == nil {
		return ApplicantBoard{}, apperrors.Unauthorized("sign in required")
	}
	if !sess.User.IsApplicant() {
		return ApplicantBoard{}, apperrors.Forbidden("applicant account required")
	}

	var board ApplicantBoard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		apps, err := s.client.ListOwnApplications(gctx, sess.Credentials)
		if err != nil {
			return err
		}
		board.Applications = apps
		return nil
	})
	g.Go(func() error {
		saved, err := s.client.ListSavedJobs(gctx, sess.Credentials)
		if err != nil {
			return err
		}
		board.SavedJobs = saved
		return nil
	})
	if err := g.Wait(); err != nil {
		return ApplicantBoard{}, err
	}
	return board, nil
}

// ownedJobs keeps only the listings owned by the given recruiter.
func ownedJobs(jobs []model.Job, recruiterID string) []model.Job {
	owned := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.OwnedBy(recruiterID) {
			owned = append(owned, j)
		}
	}
	return owned
}

// PatchApplication replaces the matching entry and leaves the rest of
// the list untouched. Unknown ids leave the list as it was.
func PatchApplication(apps []model.Application, updated *model.Application) []model.Application {
	if updated == nil {
		return apps
	}
	for i := range apps {
		if apps[i].ID == updated.ID {
			apps[i] = *updated
			break
		}
	}
	return apps
}

// RemoveJob drops the matching listing and leaves the rest untouched.
func RemoveJob(jobs []model.Job, jobID string) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != jobID {
			out = append(out, j)
		}
	}
	return out
}
