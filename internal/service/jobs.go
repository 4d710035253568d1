package service

import (
	"context"
	"log/slog"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/ports"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Client ports.JobBoardClient
	Logger *slog.Logger
}

// JobService covers the public listings and the recruiter-side job
// lifecycle. Ownership is ultimately enforced upstream; the service
// pre-checks it so users get a clear error instead of a remote one.
type JobService struct {
	client ports.JobBoardClient
	logger *slog.Logger
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{client: opts.Client, logger: logger}
}

// List returns the public listings narrowed by filters.
func (s *JobService) List(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	return s.client.ListJobs(ctx, filters)
}

// JobView is a listing plus what the viewing user may do with it.
type JobView struct {
	Job *model.Job
	// CanManage is true when the viewer is the owning recruiter.
	CanManage bool
	// CanApply is true when the viewer is a signed-in applicant.
	CanApply bool
}

// Get fetches one listing and derives the viewer's capabilities.
// viewer may be nil for anonymous visitors.
func (s *JobService) Get(ctx context.Context, id string, viewer *model.User) (JobView, error) {
	job, err := s.client.GetJob(ctx, id)
	if err != nil {
		return JobView{}, err
	}

	view := JobView{Job: job}
	if viewer != nil {
		view.CanManage = viewer.IsRecruiter() && job.OwnedBy(viewer.ID)
		view.CanApply = viewer.IsApplicant()
	}
	return view, nil
}

// Create posts a new listing. Recruiters only.
func (s *JobService) Create(ctx context.Context, sess *domainauth.Session, in model.CreateJobRequest) (*model.Job, error) {
	if err := requireRecruiter(sess); err != nil {
		return nil, err
	}
	if err := validateJobRequest(in); err != nil {
		return nil, err
	}

	job, err := s.client.CreateJob(ctx, sess.Credentials, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("job created", "job_id", job.ID, "recruiter_id", sess.User.ID)
	return job, nil
}

// Update replaces a listing's fields. The caller must own it.
func (s *JobService) Update(ctx context.Context, sess *domainauth.Session, id string, in model.UpdateJobRequest) (*model.Job, error) {
	if err := requireRecruiter(sess); err != nil {
		return nil, err
	}
	if err := validateJobRequest(in); err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, sess, id); err != nil {
		return nil, err
	}

	job, err := s.client.UpdateJob(ctx, sess.Credentials, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("job updated", "job_id", id, "recruiter_id", sess.User.ID)
	return job, nil
}

// Delete removes a listing. The caller must own it.
func (s *JobService) Delete(ctx context.Context, sess *domainauth.Session, id string) error {
	if err := requireRecruiter(sess); err != nil {
		return err
	}
	if err := s.requireOwnership(ctx, sess, id); err != nil {
		return err
	}

	if err := s.client.DeleteJob(ctx, sess.Credentials, id); err != nil {
		return err
	}
	s.logger.Info("job deleted", "job_id", id, "recruiter_id", sess.User.ID)
	return nil
}

// Apply submits the signed-in applicant's application to a job.
func (s *JobService) Apply(ctx context.Context, sess *domainauth.Session, jobID string) error {
	if sess == nil || sess.User == nil {
		return apperrors.Unauthorized("sign in to apply")
	}
	if !sess.User.IsApplicant() {
		return apperrors.Forbidden("only applicants can apply to jobs")
	}
	if jobID == "" {
		return apperrors.Validation("job id is required")
	}

	if err := s.client.Apply(ctx, sess.Credentials, jobID); err != nil {
		return err
	}
	s.logger.Info("application submitted", "job_id", jobID, "applicant_id", sess.User.ID)
	return nil
}

// SavedJobs returns the signed-in applicant's saved listings.
func (s *JobService) SavedJobs(ctx context.Context, sess *domainauth.Session) ([]model.Job, error) {
	if sess == nil || sess.User == nil {
		return nil, apperrors.Unauthorized("sign in required")
	}
	return s.client.ListSavedJobs(ctx, sess.Credentials)
}

func (s *JobService) requireOwnership(ctx context.Context, sess *domainauth.Session, jobID string) error {
	job, err := s.client.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if !job.OwnedBy(sess.User.ID) {
		return apperrors.Forbidden("this job belongs to another recruiter")
	}
	return nil
}

func requireRecruiter(sess *domainauth.Session) error {
	if sess == nil || sess.User == nil {
		return apperrors.Unauthorized("sign in required")
	}
	if !sess.User.IsRecruiter() {
		return apperrors.Forbidden("recruiter account required")
	}
	return nil
}

func validateJobRequest(in model.CreateJobRequest) error {
	switch {
	case in.Title == "":
		return apperrors.ValidationField("title", "title is required")
	case in.Company == "":
		return apperrors.ValidationField("company", "company is required")
	case in.Location == "":
		return apperrors.ValidationField("location", "location is required")
	case in.Description == "":
		return apperrors.ValidationField("description", "description is required")
	default:
		return nil
	}
}
