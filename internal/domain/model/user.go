// Package model defines the core data types exchanged with the job-board API.
package model

import "time"

// Role identifies which side of the job board a user is on.
// Role is immutable after account creation.
type Role string

const (
	// RoleApplicant is an end user seeking jobs.
	RoleApplicant Role = "applicant"
	// RoleRecruiter is an end user posting jobs.
	RoleRecruiter Role = "recruiter"
)

// Valid returns true if the Role is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleApplicant || r == RoleRecruiter
}

// User is the profile record returned by the job-board API. Which
// optional fields are meaningful depends on role: applicant fields
// (skills, education, work experience, resume) and recruiter fields
// (company name/website/description) are mutually exclusive in
// practice, though the upstream schema does not enforce exclusivity.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Role  Role   `json:"role"`

	// Applicant fields.
	Skills         []string              `json:"skills,omitempty"`
	Education      []EducationEntry      `json:"education,omitempty"`
	WorkExperience []WorkExperienceEntry `json:"workExperience,omitempty"`
	Resume         string                `json:"resume,omitempty"`

	// Recruiter fields.
	CompanyName        string `json:"companyName,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
}

// IsApplicant reports whether the user holds the applicant role.
func (u *User) IsApplicant() bool { return u != nil && u.Role == RoleApplicant }

// IsRecruiter reports whether the user holds the recruiter role.
func (u *User) IsRecruiter() bool { return u != nil && u.Role == RoleRecruiter }

// EducationEntry is one row of an applicant's education history.
// A nil EndYear means "present/ongoing".
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartYear   int    `json:"startYear,omitempty"`
	EndYear     *int   `json:"endYear,omitempty"`
}

// WorkExperienceEntry is one row of an applicant's work history.
type WorkExperienceEntry struct {
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
}
