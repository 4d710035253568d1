package upstream

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
)

// ListJobs returns the public listings narrowed by filters. Blank
// filter fields are left off the query entirely.
func (c *Client) ListJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	query := url.Values{}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.Location != "" {
		query.Set("location", filters.Location)
	}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}

	var jobs []model.Job
	if _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/jobs",
		query:  query,
	}, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches one listing. The job board serves detail through the
// listing endpoint keyed by an id query parameter.
func (c *Client) GetJob(ctx context.Context, id string) (*model.Job, error) {
	if id == "" {
		return nil, apperrors.Validation("job id is required")
	}

	query := url.Values{}
	query.Set("id", id)

	var job model.Job
	if _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/jobs",
		query:  query,
	}, &job); err != nil {
		return nil, err
	}
	if job.ID == "" {
		return nil, apperrors.NotFoundf("job %s not found", id)
	}
	return &job, nil
}

// CreateJob posts a new listing owned by the calling recruiter.
func (c *Client) CreateJob(ctx context.Context, creds []domainauth.CredentialCookie, in model.CreateJobRequest) (*model.Job, error) {
	var job model.Job
	if _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/jobs",
		creds:  creds,
		body:   in,
	}, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob replaces a listing's fields.
func (c *Client) UpdateJob(ctx context.Context, creds []domainauth.CredentialCookie, id string, in model.UpdateJobRequest) (*model.Job, error) {
	if id == "" {
		return nil, apperrors.Validation("job id is required")
	}

	var job model.Job
	if _, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/jobs/" + url.PathEscape(id),
		creds:  creds,
		body:   in,
	}, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a listing.
func (c *Client) DeleteJob(ctx context.Context, creds []domainauth.CredentialCookie, id string) error {
	if id == "" {
		return apperrors.Validation("job id is required")
	}

	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/jobs/" + url.PathEscape(id),
		creds:  creds,
	}, nil)
	return err
}

// ListSavedJobs returns the calling applicant's saved listings.
func (c *Client) ListSavedJobs(ctx context.Context, creds []domainauth.CredentialCookie) ([]model.Job, error) {
	var jobs []model.Job
	if _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/user/saved-jobs",
		creds:  creds,
	}, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
