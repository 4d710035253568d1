package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
	"github.com/jobdeck/jobdeck-ui/internal/mocks"
)

func newDashboardService(client *mocks.MockJobBoardClient) *DashboardService {
	return NewDashboardService(DashboardServiceOptions{
		Client: client,
		Jobs:   NewJobService(JobServiceOptions{Client: client}),
	})
}

func TestDashboardService_Recruiter_FiltersToOwnedJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().ListJobs(gomock.Any(), model.JobFilters{}).Return([]model.Job{
		{ID: "j1", RecruiterID: "r1"},
		{ID: "j2", RecruiterID: "someone-else"},
		{ID: "j3", RecruiterID: "r1"},
	}, nil)
	client.EXPECT().ListApplications(gomock.Any(), testCreds(), "", model.ApplicationStatus("")).
		Return([]model.Application{{ID: "a1", JobID: "j1"}}, nil)

	svc := newDashboardService(client)

	board, err := svc.Recruiter(context.Background(), recruiterSession(), "")
	require.NoError(t, err)
	require.Len(t, board.Jobs, 2)
	assert.Equal(t, "j1", board.Jobs[0].ID)
	assert.Equal(t, "j3", board.Jobs[1].ID)
	require.Len(t, board.Applications, 1)
}

func TestDashboardService_Recruiter_Gating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newDashboardService(mocks.NewMockJobBoardClient(ctrl))
	ctx := context.Background()

	_, err := svc.Recruiter(ctx, applicantSession(), "")
	assert.True(t, apperrors.IsForbidden(err))

	_, err = svc.Recruiter(ctx, recruiterSession(), "pending")
	assert.True(t, apperrors.IsValidation(err))
}

func TestDashboardService_Applications_StatusFilterRunsUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().ListApplications(gomock.Any(), testCreds(), "j1", model.StatusShortlisted).
		Return([]model.Application{{ID: "a2", Status: model.StatusShortlisted}}, nil)

	svc := newDashboardService(client)

	apps, err := svc.Applications(context.Background(), recruiterSession(), "j1", model.StatusShortlisted)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, model.StatusShortlisted, apps[0].Status)
}

func TestDashboardService_ChangeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().UpdateApplicationStatus(gomock.Any(), testCreds(), "a1", model.StatusReviewed).
		Return(&model.Application{ID: "a1", Status: model.StatusReviewed}, nil)

	svc := newDashboardService(client)

	app, err := svc.ChangeStatus(context.Background(), recruiterSession(), "a1", model.StatusReviewed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReviewed, app.Status)

	_, err = svc.ChangeStatus(context.Background(), applicantSession(), "a1", model.StatusReviewed)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestDashboardService_Applicant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().ListOwnApplications(gomock.Any(), testCreds()).
		Return([]model.Application{{ID: "a1", JobTitle: "Go Engineer"}}, nil)
	client.EXPECT().ListSavedJobs(gomock.Any(), testCreds()).
		Return([]model.Job{{ID: "j1", Title: "Go Engineer"}}, nil)

	svc := newDashboardService(client)

	board, err := svc.Applicant(context.Background(), applicantSession())
	require.NoError(t, err)
	require.Len(t, board.Applications, 1)
	require.Len(t, board.SavedJobs, 1)

	_, err = svc.Applicant(context.Background(), recruiterSession())
	assert.True(t, apperrors.IsForbidden(err))
}

func TestDashboardService_Applicant_PropagatesFetchErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockJobBoardClient(ctrl)
	client.EXPECT().ListOwnApplications(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Unavailable("job board unreachable"))
	client.EXPECT().ListSavedJobs(gomock.Any(), gomock.Any()).
		Return([]model.Job{}, nil).AnyTimes()

	svc := newDashboardService(client)

	_, err := svc.Applicant(context.Background(), applicantSession())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestPatchApplication(t *testing.T) {
	apps := []model.Application{
		{ID: "a1", Status: model.StatusApplied},
		{ID: "a2", Status: model.StatusApplied},
		{ID: "a3", Status: model.StatusApplied},
	}

	patched := PatchApplication(apps, &model.Application{ID: "a2", Status: model.StatusShortlisted})
	require.Len(t, patched, 3)
	assert.Equal(t, model.StatusApplied, patched[0].Status)
	assert.Equal(t, model.StatusShortlisted, patched[1].Status)
	assert.Equal(t, model.StatusApplied, patched[2].Status)

	// Unknown ids leave the list untouched.
	same := PatchApplication(apps, &model.Application{ID: "missing", Status: model.StatusRejected})
	for _, a := range same {
		assert.NotEqual(t, model.StatusRejected, a.Status)
	}
}

func TestRemoveJob(t *testing.T) {
	jobs := []model.Job{{ID: "j1"}, {ID: "j2"}, {ID: "j3"}}

	left := RemoveJob(jobs, "j2")
	require.Len(t, left, 2)
	assert.Equal(t, "j1", left[0].ID)
	assert.Equal(t, "j3", left[1].ID)

	assert.Len(t, RemoveJob(jobs, "missing"), 3)
}
