package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/mocks"
)

func recruiterSession() *domainauth.Session {
	return &domainauth.Session{
		ID:          "sess-rec",
		User:        &model.User{ID: "r1", Name: "Rex", Role: model.RoleRecruiter},
		Credentials: testCreds(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func applicantSession() *domainauth.Session {
	return &domainauth.Session{
		ID:          "sess-app",
		User:        testUser(),
		Credentials: testCreds(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func validJobRequest() model.CreateJobRequest {
	return model.CreateJobRequest{
		Title:       "Go Engineer",
		Company:     "Initech",
		Location:    "Remote",
		Type:        "full-time",
		Experience:  "3+ years",
		Description: "build services",
	}
}

func TestJobService_Get_ViewerCapabilities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := &model.Job{ID: "j1", Title: "Go Engineer", RecruiterID: "r1"}
	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().GetJob(gomock.Any(), "j1").Return(job, nil).Times(3)

	svc := NewJobService(JobServiceOptions{Client: client})
	ctx := context.Background()

	anon, err := svc.Get(ctx, "j1", nil)
	require.NoError(t, err)
	assert.False(t, anon.CanManage)
	assert.False(t, anon.CanApply)

	owner, err := svc.Get(ctx, "j1", &model.User{ID: "r1", Role: model.RoleRecruiter})
	require.NoError(t, err)
	assert.True(t, owner.CanManage)
	assert.False(t, owner.CanApply)

	applicant, err := svc.Get(ctx, "j1", testUser())
	require.NoError(t, err)
	assert.False(t, applicant.CanManage)
	assert.True(t, applicant.CanApply)
}

func TestJobService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().CreateJob(gomock.Any(), testCreds(), validJobRequest()).
		Return(&model.Job{ID: "j9", Title: "Go Engineer", RecruiterID: "r1"}, nil)

	svc := NewJobService(JobServiceOptions{Client: client})

	job, err := svc.Create(context.Background(), recruiterSession(), validJobRequest())
	require.NoError(t, err)
	assert.Equal(t, "j9", job.ID)
}

func TestJobService_Create_Gating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewJobService(JobServiceOptions{Client: mocks.NewMockJobBoardClient(ctrl)})
	ctx := context.Background()

	_, err := svc.Create(ctx, nil, validJobRequest())
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = svc.Create(ctx, applicantSession(), validJobRequest())
	assert.True(t, apperrors.IsForbidden(err))

	incomplete := validJobRequest()
	incomplete.Title = ""
	_, err = svc.Create(ctx, recruiterSession(), incomplete)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobService_Update_OwnershipEnforced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().GetJob(gomock.Any(), "j1").
		Return(&model.Job{ID: "j1", RecruiterID: "someone-else"}, nil)

	svc := NewJobService(JobServiceOptions{Client: client})

	_, err := svc.Update(context.Background(), recruiterSession(), "j1", validJobRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestJobService_Update_OwnedJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().GetJob(gomock.Any(), "j1").
		Return(&model.Job{ID: "j1", RecruiterID: "r1"}, nil)
	client.EXPECT().UpdateJob(gomock.Any(), testCreds(), "j1", gomock.Any()).
		Return(&model.Job{ID: "j1", Title: "Staff Go Engineer", RecruiterID: "r1"}, nil)

	svc := NewJobService(JobServiceOptions{Client: client})

	job, err := svc.Update(context.Background(), recruiterSession(), "j1", validJobRequest())
	require.NoError(t, err)
	assert.Equal(t, "Staff Go Engineer", job.Title)
}

func TestJobService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().GetJob(gomock.Any(), "j1").
		Return(&model.Job{ID: "j1", RecruiterID: "r1"}, nil)
	client.EXPECT().DeleteJob(gomock.Any(), testCreds(), "j1").Return(nil)

	svc := NewJobService(JobServiceOptions{Client: client})
	require.NoError(t, svc.Delete(context.Background(), recruiterSession(), "j1"))
}

func TestJobService_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().Apply(gomock.Any(), testCreds(), "j1").Return(nil)

	svc := NewJobService(JobServiceOptions{Client: client})
	ctx := context.Background()

	require.NoError(t, svc.Apply(ctx, applicantSession(), "j1"))

	err := svc.Apply(ctx, recruiterSession(), "j1")
	assert.True(t, apperrors.IsForbidden(err))

	err = svc.Apply(ctx, nil, "j1")
	assert.True(t, apperrors.IsUnauthorized(err))

	err = svc.Apply(ctx, applicantSession(), "")
	assert.True(t, apperrors.IsValidation(err))
}
