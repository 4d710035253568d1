package upstream

import (
	"context"
	"net/http"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

// GetProfile fetches the calling user's full profile record.
func (c *Client) GetProfile(ctx context.Context, creds []domainauth.CredentialCookie) (*model.User, error) {
	var user model.User
	if _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/user/profile",
		creds:  creds,
	}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile submits a profile update and returns the stored
// profile as the job board now sees it.
func (c *Client) UpdateProfile(ctx context.Context, creds []domainauth.CredentialCookie, upd model.ProfileUpdate) (*model.User, error) {
	var user model.User
	if _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/user/profile/update",
		creds:  creds,
		body:   upd,
	}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
