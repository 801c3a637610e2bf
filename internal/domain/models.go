package domain

// Job represents a job posting
type Job struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Salary           string   `yaml:"salary"`
	Type             string   `yaml:"type"`
	Experience       string   `yaml:"experience"`
	Description      string   `yaml:"description"`
	Responsibilities []string `yaml:"responsibilities"`
	Requirements     []string `yaml:"requirements"`
	Benefits         []string `yaml:"benefits"`
	Posted           string   `yaml:"posted"`
}

// Company represents a hiring organisation shown on the landing page
type Company struct {
	Name     string `yaml:"name"`
	Industry string `yaml:"industry"`
	Openings int    `yaml:"openings"`
}

// Category represents a trending job category
type Category struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Count int    `yaml:"count"`
}

// Role is the kind of user signed in ("" when anonymous)
type Role string

const (
	RoleNone      Role = ""
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// Label returns a human readable role name
func (r Role) Label() string {
	switch r {
	case RoleJobSeeker:
		return "Job Seeker"
	case RoleEmployer:
		return "Employer"
	default:
		return "Guest"
	}
}

// Page identifies a top-level screen
type Page string

const (
	PageLanding   Page = "landing"
	PageListings  Page = "listings"
	PageDetails   Page = "details"
	PageDashboard Page = "dashboard"
	PageEmployer  Page = "employer"
	PageAuth      Page = "auth"
)

// Valid reports whether p names a page
func (p Page) Valid() bool {
	switch p {
	case PageLanding, PageListings, PageDetails, PageDashboard, PageEmployer, PageAuth:
		return true
	}
	return false
}

// ParsePage maps a config value to a page, falling back to landing
func ParsePage(s string) Page {
	switch Page(s) {
	case PageListings, PageDashboard, PageEmployer, PageAuth:
		return Page(s)
	default:
		return PageLanding
	}
}
