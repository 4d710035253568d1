package model

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus is the review state of an application. Transitions
// are unordered: any status is reachable from any other, and only the
// recruiter owning the parent job may write it.
type ApplicationStatus string

const (
	// StatusApplied is the initial status of every application.
	StatusApplied ApplicationStatus = "applied"
	// StatusReviewed marks an application a recruiter has looked at.
	StatusReviewed ApplicationStatus = "reviewed"
	// StatusShortlisted marks an application selected for follow-up.
	StatusShortlisted ApplicationStatus = "shortlisted"
	// StatusRejected marks a declined application.
	StatusRejected ApplicationStatus = "rejected"
)

// AllStatuses lists the four valid statuses in display order.
func AllStatuses() []ApplicationStatus {
	return []ApplicationStatus{StatusApplied, StatusReviewed, StatusShortlisted, StatusRejected}
}

// Valid returns true if the status is one of the four enumerated values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusReviewed, StatusShortlisted, StatusRejected:
		return true
	default:
		return false
	}
}

// ParseStatus normalizes and validates a status string. Anything
// outside the four enumerated values is rejected.
func ParseStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("invalid application status: %q", s)
	}
	return st, nil
}

// ApplicantSnapshot is the slice of the applicant's profile captured on
// an application at apply time.
type ApplicantSnapshot struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills,omitempty"`
	Resume string   `json:"resume,omitempty"`
}

// Application links an applicant to a job posting.
type Application struct {
	ID        string            `json:"_id"`
	JobID     string            `json:"jobId"`
	JobTitle  string            `json:"jobTitle,omitempty"`
	Company   string            `json:"company,omitempty"`
	Applicant ApplicantSnapshot `json:"applicant"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
