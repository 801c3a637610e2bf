package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"jobboard/internal/domain"
)

//go:embed jobs.yaml
var defaultData []byte

type document struct {
	Jobs       []domain.Job             `yaml:"jobs"`
	Companies  []domain.Company         `yaml:"companies"`
	Categories []domain.Category        `yaml:"categories"`
	Tips       map[domain.Page][]string `yaml:"tips"`
	Postings   []domain.Posting         `yaml:"postings"`
	Applicants []domain.Applicant       `yaml:"applicants"`
	Profile    domain.Profile           `yaml:"profile"`
	Sponsored  domain.Sponsored         `yaml:"sponsored"`
}

// Catalog is the read-only job dataset
type Catalog struct {
	jobs       []domain.Job
	byID       map[string]int
	companies  []domain.Company
	categories []domain.Category

	tips       map[domain.Page][]string
	postings   []domain.Posting
	applicants []domain.Applicant
	profile    domain.Profile
	sponsored  domain.Sponsored
}

// Load parses the embedded dataset
func Load() (*Catalog, error) {
	return LoadFrom(bytes.NewReader(defaultData))
}

// LoadFrom parses a YAML dataset
func LoadFrom(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c, err := New(doc.Jobs, doc.Companies, doc.Categories)
	if err != nil {
		return nil, err
	}
	if err := c.withBoard(doc); err != nil {
		return nil, err
	}
	return c, nil
}

// New builds a catalog, rejecting jobs without an id or with a repeated id
func New(jobs []domain.Job, companies []domain.Company, categories []domain.Category) (*Catalog, error) {
	byID := make(map[string]int, len(jobs))
	for i, job := range jobs {
		if job.ID == "" {
			return nil, fmt.Errorf("job %d (%q) has no id", i, job.Title)
		}
		if _, dup := byID[job.ID]; dup {
			return nil, fmt.Errorf("duplicate job id %q", job.ID)
		}
		byID[job.ID] = i
	}
	return &Catalog{
		jobs:       jobs,
		byID:       byID,
		companies:  companies,
		categories: categories,
	}, nil
}

// withBoard attaches the assistant tips, the employer board, the seeker
// profile and the sponsored content
func (c *Catalog) withBoard(doc document) error {
	for page := range doc.Tips {
		if !page.Valid() {
			return fmt.Errorf("tips for unknown page %q", page)
		}
	}
	for _, p := range doc.Postings {
		if p.Status != "active" && p.Status != "closed" {
			return fmt.Errorf("posting %q has status %q, want active or closed", p.ID, p.Status)
		}
	}
	for _, s := range doc.Profile.Skills {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("skill %q has level %d, want 0-100", s.Name, s.Level)
		}
	}
	c.tips = doc.Tips
	c.postings = doc.Postings
	c.applicants = doc.Applicants
	c.profile = doc.Profile
	c.sponsored = doc.Sponsored
	return nil
}

// Jobs returns every job in catalogue order
func (c *Catalog) Jobs() []domain.Job {
	out := make([]domain.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// Job looks up a job by id
func (c *Catalog) Job(id string) (domain.Job, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Job{}, false
	}
	return c.jobs[i], true
}

// JobsByID resolves ids in the given order, skipping unknown ones
func (c *Catalog) JobsByID(ids []string) []domain.Job {
	out := make([]domain.Job, 0, len(ids))
	for _, id := range ids {
		if job, ok := c.Job(id); ok {
			out = append(out, job)
		}
	}
	return out
}

// Similar returns up to limit jobs other than id, in catalogue order.
// limit <= 0 means no limit.
func (c *Catalog) Similar(id string, limit int) []domain.Job {
	var out []domain.Job
	for _, job := range c.jobs {
		if job.ID == id {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, job)
	}
	return out
}

// Companies returns the featured companies
func (c *Catalog) Companies() []domain.Company {
	return c.companies
}

// Categories returns the trending categories
func (c *Catalog) Categories() []domain.Category {
	return c.categories
}

// Locations returns distinct job locations in first-seen order
func (c *Catalog) Locations() []string {
	return c.distinct(func(j domain.Job) string { return j.Location })
}

// Types returns distinct employment types in first-seen order
func (c *Catalog) Types() []string {
	return c.distinct(func(j domain.Job) string { return j.Type })
}

// Experiences returns distinct experience ranges in first-seen order
func (c *Catalog) Experiences() []string {
	return c.distinct(func(j domain.Job) string { return j.Experience })
}

func (c *Catalog) distinct(field func(domain.Job) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, job := range c.jobs {
		v := field(job)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// TotalOpenings sums openings across featured companies
func (c *Catalog) TotalOpenings() int {
	total := 0
	for _, company := range c.companies {
		total += company.Openings
	}
	return total
}

// Tips returns the assistant tips for page. Pages without their own tips
// use the landing page's.
func (c *Catalog) Tips(page domain.Page) []string {
	if tips, ok := c.tips[page]; ok && len(tips) > 0 {
		return tips
	}
	return c.tips[domain.PageLanding]
}

// Postings returns the employer's job postings
func (c *Catalog) Postings() []domain.Posting {
	return c.postings
}

// Applicants returns the candidates who applied to the employer's postings
func (c *Catalog) Applicants() []domain.Applicant {
	return c.applicants
}

// Profile returns the seeker's starting profile
func (c *Catalog) Profile() domain.Profile {
	return c.profile
}

// Sponsored returns the landing page's paid content
func (c *Catalog) Sponsored() domain.Sponsored {
	return c.sponsored
}
