package service

import (
	"context"
	"log/slog"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	"github.com/jobdeck/jobdeck-ui/internal/domain/profile"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/ports"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Client ports.JobBoardClient
	Auth   *AuthService
	Users  ports.UserCache
	Logger *slog.Logger
}

// ProfileService loads and submits the role-variant profile form.
type ProfileService struct {
	client ports.JobBoardClient
	auth   *AuthService
	users  ports.UserCache
	logger *slog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{
		client: opts.Client,
		auth:   opts.Auth,
		users:  opts.Users,
		logger: logger,
	}
}

// Load resolves the profile record for editing. Sources are consulted
// in a fixed order: the session snapshot, then the profile cache, then
// the job board itself. The first hit wins, so the form shows the same
// data every surface just rendered.
func (s *ProfileService) Load(ctx context.Context, sess *domainauth.Session) (profile.Edit, error) {
	user, err := s.resolveUser(ctx, sess)
	if err != nil {
		return profile.Edit{}, err
	}
	return profile.NewEdit(user), nil
}

func (s *ProfileService) resolveUser(ctx context.Context, sess *domainauth.Session) (*model.User, error) {
	if sess == nil || sess.User == nil {
		return nil, apperrors.Unauthorized("sign in required")
	}

	if hasProfileDetail(sess.User) {
		return sess.User, nil
	}

	cached, err := s.users.Get(ctx, sess.User.ID)
	if err != nil {
		s.logger.Warn("user cache read failed", "user_id", sess.User.ID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	fetched, err := s.client.GetProfile(ctx, sess.Credentials)
	if err != nil {
		return nil, err
	}
	if cacheErr := s.users.Put(ctx, fetched); cacheErr != nil {
		s.logger.Warn("user cache write failed", "user_id", fetched.ID, "error", cacheErr)
	}
	return fetched, nil
}

// hasProfileDetail reports whether the snapshot carries more than the
// base identity fields. A bare sign-in snapshot forces a fetch.
func hasProfileDetail(u *model.User) bool {
	if u.IsRecruiter() {
		return u.CompanyName != "" || u.CompanyWebsite != "" || u.CompanyDescription != "" || u.Bio != ""
	}
	return len(u.Skills) > 0 || len(u.Education) > 0 || len(u.WorkExperience) > 0 || u.Resume != "" || u.Bio != ""
}

// Submit normalizes the form, gates it by the session's role, and
// pushes the update upstream. On success the session snapshot and
// cache are refreshed with the stored profile.
func (s *ProfileService) Submit(ctx context.Context, sess *domainauth.Session, edit profile.Edit) (*model.User, error) {
	if sess == nil || sess.User == nil {
		return nil, apperrors.Unauthorized("sign in required")
	}
	if edit.Role != sess.User.Role {
		return nil, apperrors.Forbidden("profile form does not match your account type")
	}

	upd, err := edit.Normalize()
	if err != nil {
		return nil, err
	}
	if upd.Name == "" {
		return nil, apperrors.ValidationField("name", "name is required")
	}

	updated, err := s.client.UpdateProfile(ctx, sess.Credentials, upd)
	if err != nil {
		return nil, err
	}
	if updated.ID == "" {
		// Some deployments answer profile updates with a bare ack.
		if updated, err = s.client.GetProfile(ctx, sess.Credentials); err != nil {
			return nil, err
		}
	}

	if err := s.auth.RefreshUser(ctx, sess.ID, updated); err != nil {
		s.logger.Warn("session refresh after profile update failed", "user_id", updated.ID, "error", err)
	}
	s.logger.Info("profile updated", "user_id", updated.ID, "role", updated.Role)
	return updated, nil
}
