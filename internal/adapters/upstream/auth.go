package upstream

import (
	"context"
	"net/http"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/ports"
)

var _ ports.JobBoardClient = (*Client)(nil)

type signInBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignIn authenticates against the job board and captures the
// credential cookies it issues.
func (c *Client) SignIn(ctx context.Context, email, password string) (ports.AuthResult, error) {
	var user model.User
	creds, err := c.authDo(ctx, request{
		method: http.MethodPost,
		path:   "/signin",
		body:   signInBody{Email: email, Password: password},
	}, &user)
	if err != nil {
		return ports.AuthResult{}, err
	}
	if len(creds) == 0 {
		return ports.AuthResult{}, apperrors.Remote("job board issued no session credentials")
	}
	return ports.AuthResult{User: &user, Credentials: creds}, nil
}

// SignUp registers a new account; the job board signs it in on success.
func (c *Client) SignUp(ctx context.Context, in ports.SignUpInput) (ports.AuthResult, error) {
	var user model.User
	creds, err := c.authDo(ctx, request{
		method: http.MethodPost,
		path:   "/signup",
		body: signUpBody{
			Name:     in.Name,
			Email:    in.Email,
			Password: in.Password,
			Role:     string(in.Role),
		},
	}, &user)
	if err != nil {
		return ports.AuthResult{}, err
	}
	if len(creds) == 0 {
		return ports.AuthResult{}, apperrors.Remote("job board issued no session credentials")
	}
	return ports.AuthResult{User: &user, Credentials: creds}, nil
}

// SignOut invalidates the upstream credentials.
func (c *Client) SignOut(ctx context.Context, creds []domainauth.CredentialCookie) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/signout",
		creds:  creds,
	}, nil)
	return err
}

// CheckSession resolves the credentials to the account they belong to.
func (c *Client) CheckSession(ctx context.Context, creds []domainauth.CredentialCookie) (*model.User, error) {
	var user model.User
	if _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/me",
		creds:  creds,
	}, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, apperrors.Unauthorized("sign in required")
	}
	return &user, nil
}
