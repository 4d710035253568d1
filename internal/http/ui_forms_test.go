package httpx

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	"github.com/jobdeck/jobdeck-ui/internal/domain/profile"
)

func TestParseJobForm_Valid(t *testing.T) {
	req := FormRequest(http.MethodPost, "/jobs", url.Values{
		"title":       {"  Senior Gopher  "},
		"company":     {"Acme"},
		"location":    {"Remote"},
		"type":        {"full-time"},
		"experience":  {"5+ years"},
		"salary":      {"$150k"},
		"description": {"Build things."},
	})

	got, fieldErrors := parseJobForm(req)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, "Senior Gopher", got.Title)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "full-time", got.Type)
}

func TestParseJobForm_MissingRequiredFields(t *testing.T) {
	req := FormRequest(http.MethodPost, "/jobs", url.Values{
		"title": {"   "},
		"type":  {"full-time"},
	})

	_, fieldErrors := parseJobForm(req)
	for _, field := range []string{"title", "company", "location", "description"} {
		if _, ok := fieldErrors[field]; !ok {
			t.Errorf("expected an error for %q", field)
		}
	}
}

func TestParseJobForm_RejectsUnknownType(t *testing.T) {
	req := FormRequest(http.MethodPost, "/jobs", url.Values{
		"title":       {"T"},
		"company":     {"C"},
		"location":    {"L"},
		"description": {"D"},
		"type":        {"Volunteer"},
	})

	_, fieldErrors := parseJobForm(req)
	assert.Contains(t, fieldErrors, "type")
}

func TestParseProfileForm_Recruiter(t *testing.T) {
	req := FormRequest(http.MethodPost, "/profile", url.Values{
		"name":               {"Rita"},
		"phone":              {"555-0100"},
		"companyName":        {"Acme"},
		"companyWebsite":     {"https://acme.example"},
		"companyDescription": {"We make anvils."},
		// Applicant-only fields are ignored for recruiters.
		"education.0.institution": {"State U"},
	})

	edit, err := parseProfileForm(req, model.RoleRecruiter)
	require.NoError(t, err)
	require.NotNil(t, edit.Recruiter)
	assert.Nil(t, edit.Applicant)
	assert.Equal(t, "Rita", edit.Recruiter.Name)
	assert.Equal(t, "Acme", edit.Recruiter.CompanyName)
}

func TestParseProfileForm_ApplicantListRows(t *testing.T) {
	req := FormRequest(http.MethodPost, "/profile", url.Values{
		"name":   {"Ada"},
		"skills": {"go, sql"},
		// Row indices arrive sparse; the highest index defines the count.
		"education.0.institution":      {"State U"},
		"education.0.degree":           {"BSc"},
		"education.1.institution":      {"Tech Institute"},
		"education.1.startYear":        {"2020"},
		"workExperience.0.company":     {"Acme"},
		"workExperience.0.position":    {"Engineer"},
		"workExperience.0.startDate":   {"2021-03-01"},
		"workExperience.0.description": {"Built the billing system."},
	})

	edit, err := parseProfileForm(req, model.RoleApplicant)
	require.NoError(t, err)
	require.NotNil(t, edit.Applicant)

	require.Len(t, edit.Applicant.Education, 2)
	assert.Equal(t, "State U", edit.Applicant.Education[0].Institution)
	assert.Equal(t, "BSc", edit.Applicant.Education[0].Degree)
	assert.Equal(t, "Tech Institute", edit.Applicant.Education[1].Institution)
	assert.Equal(t, "2020", edit.Applicant.Education[1].StartYear)

	require.Len(t, edit.Applicant.Experience, 1)
	assert.Equal(t, "Acme", edit.Applicant.Experience[0].Company)
	assert.Equal(t, "2021-03-01", edit.Applicant.Experience[0].StartDate)
}

func TestParseProfileForm_RejectsUnknownRowKey(t *testing.T) {
	req := FormRequest(http.MethodPost, "/profile", url.Values{
		"education.0.salary": {"lots"},
	})

	_, err := parseProfileForm(req, model.RoleApplicant)
	assert.Error(t, err)
}

func TestSplitRowField(t *testing.T) {
	tests := []struct {
		name  string
		field profile.ListField
		index int
		key   string
		ok    bool
	}{
		{name: "education.0.institution", field: profile.FieldEducation, index: 0, key: "institution", ok: true},
		{name: "workExperience.12.endDate", field: profile.FieldExperience, index: 12, key: "endDate", ok: true},
		{name: "skills", ok: false},
		{name: "education.x.degree", ok: false},
		{name: "education.-1.degree", ok: false},
		{name: "hobbies.0.name", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, index, key, ok := splitRowField(tt.name)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if field != tt.field || index != tt.index || key != tt.key {
				t.Errorf("got (%s, %d, %s), want (%s, %d, %s)", field, index, key, tt.field, tt.index, tt.key)
			}
		})
	}
}

func TestRowCount(t *testing.T) {
	form := map[string][]string{
		"education.0.institution":  {"a"},
		"education.3.degree":       {"b"},
		"workExperience.1.company": {"c"},
		"name":                     {"d"},
	}
	if got := rowCount(form, profile.FieldEducation); got != 4 {
		t.Errorf("education rowCount = %d, want 4", got)
	}
	if got := rowCount(form, profile.FieldExperience); got != 2 {
		t.Errorf("workExperience rowCount = %d, want 2", got)
	}
}
