package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	// Main navigation pages.
	PageHome      = "home"
	PageDashboard = "dashboard"

	// Job pages.
	PageJob     = "job"      // job detail view
	PageJobForm = "job-form" // post/edit form

	// Applications pages (recruiter view of a job's applicants).
	PageApplications = "applications"

	// Profile page.
	PageProfile = "profile"

	// Auth pages.
	PageSignIn = "signin"
	PageSignUp = "signup"

	// Loading placeholder shown while the startup session check is unresolved.
	PageLoading = "loading"
)

// Template paths used for loading templates in tests and production.
const (
	// Template directory paths.
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
// Using a dedicated type improves compile-time checks and prevents typos.
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:         "home-content",
	PageDashboard:    "dashboard-content",
	PageJob:          "job-content",
	PageJobForm:      "job-form-content",
	PageApplications: "applications-content",
	PageProfile:      "profile-content",
	PageSignIn:       "signin-content",
	PageSignUp:       "signup-content",
	PageLoading:      "loading-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to home-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "home-content"
}
