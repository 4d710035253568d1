// Package profile holds the role-variant profile editing model: the
// reshaped form state, its mutation operations, and the normalization
// back to the wire format. It is pure and free of HTTP concerns.
package profile

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

// dateLayout is the calendar-date format used for experience date inputs.
const dateLayout = "2006-01-02"

// ListField names a variable-length sub-list of the applicant form.
type ListField string

const (
	// FieldEducation addresses the education rows.
	FieldEducation ListField = "education"
	// FieldExperience addresses the work-experience rows.
	FieldExperience ListField = "workExperience"
)

// EducationRow is one education entry reshaped for editing: numeric
// years become strings for input binding, and a blank end year means
// "present/ongoing".
type EducationRow struct {
	Institution string
	Degree      string
	StartYear   string
	EndYear     string
}

// ExperienceRow is one work-experience entry reshaped for editing,
// with dates as calendar-date strings.
type ExperienceRow struct {
	Company     string
	Position    string
	StartDate   string
	EndDate     string
	Description string
}

// ApplicantEdit is the applicant-role form state. Skills are a single
// comma-joined string for single-field editing.
type ApplicantEdit struct {
	Name       string
	Phone      string
	Bio        string
	Skills     string
	Education  []EducationRow
	Experience []ExperienceRow
	Resume     string
}

// RecruiterEdit is the recruiter-role form state. It carries no
// applicant fields at all, so an invalid combination cannot be built.
type RecruiterEdit struct {
	Name               string
	Phone              string
	Bio                string
	CompanyName        string
	CompanyWebsite     string
	CompanyDescription string
}

// Edit is the role-selected form variant. Exactly one of Applicant or
// Recruiter is set, chosen by Role at load time.
type Edit struct {
	Role      model.Role
	Applicant *ApplicantEdit
	Recruiter *RecruiterEdit
}

// NewEdit reshapes a profile record into the editing variant for the
// user's role.
func NewEdit(u *model.User) Edit {
	if u == nil {
		return Edit{}
	}
	if u.Role == model.RoleRecruiter {
		return Edit{Role: u.Role, Recruiter: &RecruiterEdit{
			Name:               u.Name,
			Phone:              u.Phone,
			Bio:                u.Bio,
			CompanyName:        u.CompanyName,
			CompanyWebsite:     u.CompanyWebsite,
			CompanyDescription: u.CompanyDescription,
		}}
	}
	return Edit{Role: model.RoleApplicant, Applicant: &ApplicantEdit{
		Name:       u.Name,
		Phone:      u.Phone,
		Bio:        u.Bio,
		Skills:     JoinSkills(u.Skills),
		Education:  educationRows(u.Education),
		Experience: experienceRows(u.WorkExperience),
		Resume:     u.Resume,
	}}
}

func educationRows(entries []model.EducationEntry) []EducationRow {
	rows := make([]EducationRow, 0, len(entries))
	for _, e := range entries {
		row := EducationRow{Institution: e.Institution, Degree: e.Degree}
		if e.StartYear != 0 {
			row.StartYear = strconv.Itoa(e.StartYear)
		}
		if e.EndYear != nil {
			row.EndYear = strconv.Itoa(*e.EndYear)
		}
		rows = append(rows, row)
	}
	return rows
}

func experienceRows(entries []model.WorkExperienceEntry) []ExperienceRow {
	rows := make([]ExperienceRow, 0, len(entries))
	for _, e := range entries {
		row := ExperienceRow{Company: e.Company, Position: e.Position, Description: e.Description}
		if e.StartDate != nil {
			row.StartDate = e.StartDate.Format(dateLayout)
		}
		if e.EndDate != nil {
			row.EndDate = e.EndDate.Format(dateLayout)
		}
		rows = append(rows, row)
	}
	return rows
}

// AddEducation appends a blank education row with defined keys and no
// required values yet.
func (e *ApplicantEdit) AddEducation() {
	e.Education = append(e.Education, EducationRow{})
}

// AddExperience appends a blank work-experience row.
func (e *ApplicantEdit) AddExperience() {
	e.Experience = append(e.Experience, ExperienceRow{})
}

// UpdateListEntry replaces exactly one key of one list entry, leaving
// every other key and row untouched.
func (e *ApplicantEdit) UpdateListEntry(field ListField, index int, key, value string) error {
	switch field {
	case FieldEducation:
		if index < 0 || index >= len(e.Education) {
			return fmt.Errorf("education index %d out of range", index)
		}
		return e.Education[index].set(key, value)
	case FieldExperience:
		if index < 0 || index >= len(e.Experience) {
			return fmt.Errorf("workExperience index %d out of range", index)
		}
		return e.Experience[index].set(key, value)
	default:
		return fmt.Errorf("unknown list field %q", field)
	}
}

func (r *EducationRow) set(key, value string) error {
	switch key {
	case "institution":
		r.Institution = value
	case "degree":
		r.Degree = value
	case "startYear":
		r.StartYear = value
	case "endYear":
		r.EndYear = value
	default:
		return fmt.Errorf("unknown education key %q", key)
	}
	return nil
}

func (r *ExperienceRow) set(key, value string) error {
	switch key {
	case "company":
		r.Company = value
	case "position":
		r.Position = value
	case "startDate":
		r.StartDate = value
	case "endDate":
		r.EndDate = value
	case "description":
		r.Description = value
	default:
		return fmt.Errorf("unknown experience key %q", key)
	}
	return nil
}

// parseDate parses a calendar-date input, treating blank as absent.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
