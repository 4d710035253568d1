package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
)

// JoinSkills renders a skill list as a single comma-joined input value.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// SplitSkills parses a comma-separated skills input, trimming
// whitespace around each token and dropping empty tokens.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Normalize converts the applicant form state back into the update
// payload: skills are split and trimmed, years are coerced to numbers
// with a blank end year meaning the field is absent, and dates are
// parsed from calendar-date inputs.
func (e *ApplicantEdit) Normalize() (model.ProfileUpdate, error) {
	upd := model.ProfileUpdate{
		Name:   strings.TrimSpace(e.Name),
		Phone:  strings.TrimSpace(e.Phone),
		Bio:    strings.TrimSpace(e.Bio),
		Skills: SplitSkills(e.Skills),
		Resume: ptr(strings.TrimSpace(e.Resume)),
	}

	for i, row := range e.Education {
		entry := model.EducationEntry{
			Institution: strings.TrimSpace(row.Institution),
			Degree:      strings.TrimSpace(row.Degree),
		}
		start, err := parseYear(row.StartYear)
		if err != nil {
			return model.ProfileUpdate{}, apperrors.ValidationField("education", fmt.Sprintf("education entry %d: invalid start year %q", i+1, row.StartYear))
		}
		if start != nil {
			entry.StartYear = *start
		}
		end, err := parseYear(row.EndYear)
		if err != nil {
			return model.ProfileUpdate{}, apperrors.ValidationField("education", fmt.Sprintf("education entry %d: invalid end year %q", i+1, row.EndYear))
		}
		entry.EndYear = end
		upd.Education = append(upd.Education, entry)
	}

	for i, row := range e.Experience {
		entry := model.WorkExperienceEntry{
			Company:     strings.TrimSpace(row.Company),
			Position:    strings.TrimSpace(row.Position),
			Description: strings.TrimSpace(row.Description),
		}
		var err error
		if entry.StartDate, err = parseDate(row.StartDate); err != nil {
			return model.ProfileUpdate{}, apperrors.ValidationField("workExperience", fmt.Sprintf("experience entry %d: invalid start date %q", i+1, row.StartDate))
		}
		if entry.EndDate, err = parseDate(row.EndDate); err != nil {
			return model.ProfileUpdate{}, apperrors.ValidationField("workExperience", fmt.Sprintf("experience entry %d: invalid end date %q", i+1, row.EndDate))
		}
		upd.WorkExperience = append(upd.WorkExperience, entry)
	}

	return upd, nil
}

// Normalize converts the recruiter form state into the update payload.
// The result carries company fields only.
func (e *RecruiterEdit) Normalize() (model.ProfileUpdate, error) {
	return model.ProfileUpdate{
		Name:               strings.TrimSpace(e.Name),
		Phone:              strings.TrimSpace(e.Phone),
		Bio:                strings.TrimSpace(e.Bio),
		CompanyName:        ptr(strings.TrimSpace(e.CompanyName)),
		CompanyWebsite:     ptr(strings.TrimSpace(e.CompanyWebsite)),
		CompanyDescription: ptr(strings.TrimSpace(e.CompanyDescription)),
	}, nil
}

// Normalize dispatches to the active variant.
func (e Edit) Normalize() (model.ProfileUpdate, error) {
	switch {
	case e.Applicant != nil:
		return e.Applicant.Normalize()
	case e.Recruiter != nil:
		return e.Recruiter.Normalize()
	default:
		return model.ProfileUpdate{}, apperrors.Validation("no profile form to submit")
	}
}

// parseYear coerces a year input to a number, treating blank as absent.
func parseYear(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func ptr(s string) *string { return &s }
