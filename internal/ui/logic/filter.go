package logic

import (
	"slices"
	"strings"

	"jobboard/internal/domain"
)

// AllOption is the label shown for an unset select filter
const AllOption = "all"

// JobFilter holds the listings search box and the three select filters.
// Empty select fields match everything.
type JobFilter struct {
	Query      string
	Location   string
	Type       string
	Experience string
}

// IsZero reports whether no criterion is set
func (f JobFilter) IsZero() bool {
	return f == JobFilter{}
}

// Matches checks a single job against every criterion
func (f JobFilter) Matches(job domain.Job) bool {
	query, loc, typ, exp := f.effective()

	if query != "" {
		q := strings.ToLower(query)
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Company), q) {
			return false
		}
	}
	if loc != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(loc)) {
		return false
	}
	if typ != "" && !strings.EqualFold(job.Type, typ) {
		return false
	}
	if exp != "" && !strings.Contains(strings.ToLower(job.Experience), strings.ToLower(exp)) {
		return false
	}
	return true
}

// Apply returns the matching jobs in input order
func (f JobFilter) Apply(jobs []domain.Job) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if f.Matches(job) {
			out = append(out, job)
		}
	}
	return out
}

// effective folds "location:", "type:" and "exp:" prefixes typed into the
// search box into the select filters. A prefix overrides the select.
func (f JobFilter) effective() (query, location, typ, experience string) {
	location, typ, experience = f.Location, f.Type, f.Experience
	var words []string
	for _, word := range strings.Fields(f.Query) {
		key, value, ok := strings.Cut(word, ":")
		if !ok || value == "" {
			words = append(words, word)
			continue
		}
		switch strings.ToLower(key) {
		case "location", "loc":
			location = value
		case "type":
			typ = value
		case "exp", "experience":
			experience = value
		default:
			words = append(words, word)
		}
	}
	return strings.Join(words, " "), location, typ, experience
}

// CycleLocation advances the location select through options, then back to all
func (f *JobFilter) CycleLocation(options []string) {
	f.Location = cycle(f.Location, options)
}

// CycleType advances the type select
func (f *JobFilter) CycleType(options []string) {
	f.Type = cycle(f.Type, options)
}

// CycleExperience advances the experience select
func (f *JobFilter) CycleExperience(options []string) {
	f.Experience = cycle(f.Experience, options)
}

// Clear resets every criterion
func (f *JobFilter) Clear() {
	*f = JobFilter{}
}

// Describe renders a select value for display
func Describe(value string) string {
	if value == "" {
		return AllOption
	}
	return value
}

func cycle(current string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	i := slices.Index(options, current)
	if i < 0 || i == len(options)-1 {
		return ""
	}
	return options[i+1]
}
