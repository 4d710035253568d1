package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

// jobTypes are the accepted values of the job-type filter and the post form.
//
//nolint:gochecknoglobals // static read-only option list shared with templates
var jobTypes = []string{"full-time", "part-time", "contract", "internship", "remote"}

// Home renders the public job listings with search and filters.
// GET /?search=&location=&type=. The filter bar refetches the listings
// fragment via htmx; full requests get the whole page.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	filters := parseJobFilters(r)

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Jobdeck - Find Your Next Role", PageTitle: "Open Positions", CurrentPage: PageHome},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Filters"] = filters
			data["JobTypes"] = jobTypes

			jobs, err := h.JobSvc.List(ctx, filters)
			if err != nil {
				return err
			}
			data["Jobs"] = jobs
			data["JobCount"] = len(jobs)
			return nil
		},
	})
}

// parseJobFilters extracts listing filters from the query string.
// Blank and whitespace-only values mean "no filter"; an unknown job
// type is dropped rather than rejected.
func parseJobFilters(r *http.Request) model.JobFilters {
	q := r.URL.Query()
	filters := model.JobFilters{
		Search:   strings.TrimSpace(q.Get("search")),
		Location: strings.TrimSpace(q.Get("location")),
		Type:     strings.TrimSpace(q.Get("type")),
	}
	if !validJobType(filters.Type) {
		filters.Type = ""
	}
	return filters
}

func validJobType(t string) bool {
	if t == "" {
		return true
	}
	for _, known := range jobTypes {
		if t == known {
			return true
		}
	}
	return false
}
