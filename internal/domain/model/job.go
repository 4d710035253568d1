package model

// Job is a posting owned by the recruiter identified by RecruiterID
// and visible to applicants in read-only form. The upstream API keys
// jobs by Mongo-style "_id" while users carry a plain "id"; the JSON
// tags follow the wire format.
type Job struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Experience  string `json:"experience"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description,omitempty"`
	RecruiterID string `json:"recruiterId"`

	// Applications are only ever fetched from the upstream API, never
	// fabricated client-side.
	Applications []Application `json:"applications,omitempty"`
}

// OwnedBy reports whether the job belongs to the given recruiter.
func (j Job) OwnedBy(userID string) bool {
	return userID != "" && j.RecruiterID == userID
}

// JobFilters are the optional query filters accepted by the jobs
// listing endpoint. Zero values are omitted from the query string.
type JobFilters struct {
	Search   string
	Location string
	Type     string
}

// CreateJobRequest carries the fields a recruiter submits when posting a job.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Experience  string `json:"experience"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateJobRequest carries partial job fields for an edit. Empty
// strings are sent as-is; the upstream API treats the payload as a
// whole-document replacement of the editable fields.
type UpdateJobRequest = CreateJobRequest
