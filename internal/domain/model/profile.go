package model

// ProfileUpdate is the profile-update request body. Role-specific
// fields are pointers so a variant only ever serializes its own keys:
// applicant updates carry no company fields and recruiter updates
// carry no applicant fields.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`

	Skills         []string              `json:"skills,omitempty"`
	Education      []EducationEntry      `json:"education,omitempty"`
	WorkExperience []WorkExperienceEntry `json:"workExperience,omitempty"`
	Resume         *string               `json:"resume,omitempty"`

	CompanyName        *string `json:"companyName,omitempty"`
	CompanyWebsite     *string `json:"companyWebsite,omitempty"`
	CompanyDescription *string `json:"companyDescription,omitempty"`
}
