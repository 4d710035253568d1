package upstream

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
)

type applyBody struct {
	JobID string `json:"jobId"`
}

type statusBody struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

// Apply submits the calling applicant's application to a job.
func (c *Client) Apply(ctx context.Context, creds []domainauth.CredentialCookie, jobID string) error {
	if jobID == "" {
		return apperrors.Validation("job id is required")
	}

	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/jobs/apply",
		creds:  creds,
		body:   applyBody{JobID: jobID},
	}, nil)
	return err
}

// ListApplications returns applications to the recruiter's jobs. The
// status filter runs server side; a zero status means every status.
func (c *Client) ListApplications(ctx context.Context, creds []domainauth.CredentialCookie, jobID string, status model.ApplicationStatus) ([]model.Application, error) {
	query := url.Values{}
	if jobID != "" {
		query.Set("jobId", jobID)
	}
	if status != "" {
		query.Set("status", string(status))
	}

	var apps []model.Application
	if _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/applications",
		query:  query,
		creds:  creds,
	}, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus moves one application to a new status and
// returns the updated record.
func (c *Client) UpdateApplicationStatus(ctx context.Context, creds []domainauth.CredentialCookie, applicationID string, status model.ApplicationStatus) (*model.Application, error) {
	if applicationID == "" {
		return nil, apperrors.Validation("application id is required")
	}
	if !status.Valid() {
		return nil, apperrors.Validationf("invalid application status %q", status)
	}

	var app model.Application
	if _, err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/applications/status",
		creds:  creds,
		body:   statusBody{ApplicationID: applicationID, Status: string(status)},
	}, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListOwnApplications returns the calling applicant's applications.
func (c *Client) ListOwnApplications(ctx context.Context, creds []domainauth.CredentialCookie) ([]model.Application, error) {
	var apps []model.Application
	if _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/user/applications",
		creds:  creds,
	}, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
