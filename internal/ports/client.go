package ports

// Package ports defines interfaces (hexagonal ports) for the upstream
// job-board API and session persistence. Implementations live in
// internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

// SignUpInput carries the registration form fields.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// AuthResult is a successful sign-in or sign-up: the authenticated
// account plus the credential cookies the upstream issued for it.
type AuthResult struct {
	User        *model.User
	Credentials []domainauth.CredentialCookie
}

// JobBoardClient talks to the remote job-board API. Calls that act on
// behalf of a signed-in browser take the session's credential cookies
// and replay them upstream.
type JobBoardClient interface {
	// SignIn authenticates with email and password.
	SignIn(ctx context.Context, email, password string) (AuthResult, error)

	// SignUp registers a new account and signs it in.
	SignUp(ctx context.Context, in SignUpInput) (AuthResult, error)

	// SignOut invalidates the upstream credentials.
	SignOut(ctx context.Context, creds []domainauth.CredentialCookie) error

	// CheckSession asks the upstream who the credentials belong to.
	// Expired or bogus credentials yield an unauthorized error.
	CheckSession(ctx context.Context, creds []domainauth.CredentialCookie) (*model.User, error)

	// ListJobs returns the public job listings, narrowed by filters.
	ListJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error)

	// GetJob fetches a single listing by id.
	GetJob(ctx context.Context, id string) (*model.Job, error)

	// CreateJob posts a new listing owned by the calling recruiter.
	CreateJob(ctx context.Context, creds []domainauth.CredentialCookie, in model.CreateJobRequest) (*model.Job, error)

	// UpdateJob replaces a listing's fields.
	UpdateJob(ctx context.Context, creds []domainauth.CredentialCookie, id string, in model.UpdateJobRequest) (*model.Job, error)

	// DeleteJob removes a listing.
	DeleteJob(ctx context.Context, creds []domainauth.CredentialCookie, id string) error

	// Apply submits the calling applicant's application to a job.
	Apply(ctx context.Context, creds []domainauth.CredentialCookie, jobID string) error

	// ListApplications returns applications to the recruiter's jobs,
	// optionally narrowed to one job and one status.
	ListApplications(ctx context.Context, creds []domainauth.CredentialCookie, jobID string, status model.ApplicationStatus) ([]model.Application, error)

	// UpdateApplicationStatus moves one application to a new status.
	UpdateApplicationStatus(ctx context.Context, creds []domainauth.CredentialCookie, applicationID string, status model.ApplicationStatus) (*model.Application, error)

	// GetProfile fetches the calling user's full profile.
	GetProfile(ctx context.Context, creds []domainauth.CredentialCookie) (*model.User, error)

	// UpdateProfile submits a profile update and returns the stored profile.
	UpdateProfile(ctx context.Context, creds []domainauth.CredentialCookie, upd model.ProfileUpdate) (*model.User, error)

	// ListOwnApplications returns the calling applicant's applications.
	ListOwnApplications(ctx context.Context, creds []domainauth.CredentialCookie) ([]model.Application, error)

	// ListSavedJobs returns the calling applicant's saved listings.
	ListSavedJobs(ctx context.Context, creds []domainauth.CredentialCookie) ([]model.Job, error)
}

// SessionStore persists and retrieves browser sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// UserCache holds recently fetched profile records so page loads do
// not round-trip upstream for data the browser just saw.
type UserCache interface {
	Put(ctx context.Context, u *model.User) error
	Get(ctx context.Context, userID string) (*model.User, error)
	Invalidate(ctx context.Context, userID string) error
}
