package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Client   ports.JobBoardClient
	Sessions ports.SessionStore
	Users    ports.UserCache
	Logger   *slog.Logger

	// SessionTTL bounds how long a browser session lives locally.
	SessionTTL time.Duration
	// RevalidateGrace is how long Resolve waits for an in-flight
	// upstream session check before reporting a loading state.
	RevalidateGrace time.Duration
}

// AuthService owns the browser session lifecycle: it signs users in
// and out against the job board, persists sessions with their upstream
// credential cookies, and revalidates them on page loads.
type AuthService struct {
	client   ports.JobBoardClient
	sessions ports.SessionStore
	users    ports.UserCache
	logger   *slog.Logger

	sessionTTL time.Duration
	grace      time.Duration

	// revalidations dedupes concurrent upstream session checks for the
	// same browser session.
	revalidations singleflight.Group
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sessionTTL := opts.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	grace := opts.RevalidateGrace
	if grace <= 0 {
		grace = 2 * time.Second
	}
	return &AuthService{
		client:     opts.Client,
		sessions:   opts.Sessions,
		users:      opts.Users,
		logger:     logger,
		sessionTTL: sessionTTL,
		grace:      grace,
	}
}

// SignIn authenticates against the job board and creates a browser
// session carrying the upstream credentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (domainauth.Session, error) {
	if email == "" {
		return domainauth.Session{}, apperrors.ValidationField("email", "email is required")
	}
	if password == "" {
		return domainauth.Session{}, apperrors.ValidationField("password", "password is required")
	}

	res, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		return domainauth.Session{}, err
	}
	return s.establishSession(ctx, res)
}

// SignUpInput carries the registration form fields.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// SignUp registers a new account and creates a browser session for it.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (domainauth.Session, error) {
	if in.Name == "" {
		return domainauth.Session{}, apperrors.ValidationField("name", "name is required")
	}
	if in.Email == "" {
		return domainauth.Session{}, apperrors.ValidationField("email", "email is required")
	}
	if in.Password == "" {
		return domainauth.Session{}, apperrors.ValidationField("password", "password is required")
	}
	if !in.Role.Valid() {
		return domainauth.Session{}, apperrors.ValidationField("role", "choose applicant or recruiter")
	}

	res, err := s.client.SignUp(ctx, ports.SignUpInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		return domainauth.Session{}, err
	}
	return s.establishSession(ctx, res)
}

func (s *AuthService) establishSession(ctx context.Context, res ports.AuthResult) (domainauth.Session, error) {
	if res.User == nil {
		return domainauth.Session{}, apperrors.Remote("job board returned no account")
	}

	session := domainauth.Session{
		ID:          uuid.NewString(),
		User:        res.User,
		Credentials: res.Credentials,
		ExpiresAt:   time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	if err := s.users.Put(ctx, res.User); err != nil {
		s.logger.Warn("user cache write failed", "user_id", res.User.ID, "error", err)
	}
	return session, nil
}

// SignOut tears down a browser session. The upstream sign-out is best
// effort; the local session dies regardless.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err == nil {
		if outErr := s.client.SignOut(ctx, session.Credentials); outErr != nil {
			s.logger.Warn("upstream sign-out failed", "session_id", sessionID, "error", outErr)
		}
		if session.User != nil {
			if cacheErr := s.users.Invalidate(ctx, session.User.ID); cacheErr != nil {
				s.logger.Warn("user cache invalidation failed", "user_id", session.User.ID, "error", cacheErr)
			}
		}
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ResolveResult is a page load's view of the browser session.
type ResolveResult struct {
	// State drives route guarding: anonymous, loading, or signed in.
	State domainauth.State
	// Session is set when a live session exists, loading or not.
	Session *domainauth.Session
}

// Resolve looks up the browser session and revalidates it against the
// job board. A stored user snapshot answers the page load immediately
// while the upstream check settles the store in the background; a
// snapshot-less session waits for the check, and gets a loading state
// when it outlasts the grace window. Concurrent page loads for the
// same session share one upstream check.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (ResolveResult, error) {
	if sessionID == "" {
		return ResolveResult{}, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		// Unknown or expired session means anonymous, not failure.
		return ResolveResult{}, nil
	}

	ch := s.revalidations.DoChan(session.ID, func() (any, error) {
		return s.revalidate(session)
	})

	if session.User != nil {
		// Stale credentials surface on the next load: the background
		// check deletes the session when the job board rejects it.
		return ResolveResult{State: domainauth.State{User: session.User}, Session: &session}, nil
	}

	select {
	case res := <-ch:
		if res.Err != nil {
			if apperrors.IsUnauthorized(res.Err) {
				return ResolveResult{}, nil
			}
			// The job board is unreachable; trust the stored snapshot
			// rather than bouncing a signed-in user.
			s.logger.Warn("session revalidation failed", "session_id", session.ID, "error", res.Err)
			return ResolveResult{State: domainauth.State{User: session.User}, Session: &session}, nil
		}
		fresh := res.Val.(domainauth.Session)
		return ResolveResult{State: domainauth.State{User: fresh.User}, Session: &fresh}, nil
	case <-time.After(s.grace):
		return ResolveResult{State: domainauth.State{Loading: true}, Session: &session}, nil
	case <-ctx.Done():
		return ResolveResult{}, ctx.Err()
	}
}

// revalidate runs detached from any single request so a shared check
// is never torn down by the first caller leaving.
func (s *AuthService) revalidate(session domainauth.Session) (domainauth.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := s.client.CheckSession(ctx, session.Credentials)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			if delErr := s.sessions.Delete(ctx, session.ID); delErr != nil {
				s.logger.Warn("stale session cleanup failed", "session_id", session.ID, "error", delErr)
			}
			if session.User != nil {
				if cacheErr := s.users.Invalidate(ctx, session.User.ID); cacheErr != nil {
					s.logger.Warn("user cache invalidation failed", "user_id", session.User.ID, "error", cacheErr)
				}
			}
		}
		return domainauth.Session{}, err
	}

	session.User = user
	if err := s.sessions.Save(ctx, session); err != nil {
		return domainauth.Session{}, fmt.Errorf("refresh session: %w", err)
	}
	if err := s.users.Put(ctx, user); err != nil {
		s.logger.Warn("user cache write failed", "user_id", user.ID, "error", err)
	}
	return session, nil
}

// RefreshUser replaces the session's user snapshot after a profile
// change so the next page load sees the new data without a round trip.
func (s *AuthService) RefreshUser(ctx context.Context, sessionID string, user *model.User) error {
	if sessionID == "" || user == nil {
		return errors.New("session ID and user are required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	session.User = user
	if err := s.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := s.users.Put(ctx, user); err != nil {
		s.logger.Warn("user cache write failed", "user_id", user.ID, "error", err)
	}
	return nil
}
