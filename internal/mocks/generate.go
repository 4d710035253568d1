// Package mocks provides mock implementations for testing Jobdeck.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// our port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	client := mocks.NewMockJobBoardClient(ctrl)
//	client.EXPECT().ListJobs(gomock.Any(), gomock.Any()).Return(jobs, nil)
package mocks

// Generate mock for the JobBoardClient interface from internal/ports.
// This creates MockJobBoardClient with methods for every upstream API call:
// SignIn, SignUp, SignOut, CheckSession, ListJobs, GetJob, CreateJob,
// UpdateJob, DeleteJob, Apply, ListApplications, UpdateApplicationStatus,
// GetProfile, UpdateProfile, ListOwnApplications, ListSavedJobs
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=jobboard_client_mock.go github.com/jobdeck/jobdeck-ui/internal/ports JobBoardClient
