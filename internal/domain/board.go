package domain

// Posting is one of the signed-in employer's job postings
type Posting struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Type       string `yaml:"type"`
	Location   string `yaml:"location"`
	Applicants int    `yaml:"applicants"`
	Views      int    `yaml:"views"`
	Posted     string `yaml:"posted"`
	Status     string `yaml:"status"` // "active" or "closed"
}

// Active reports whether the posting still takes applications
func (p Posting) Active() bool {
	return p.Status == "active"
}

// Applicant is a candidate who applied to one of the employer's postings
type Applicant struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Job        string `yaml:"job"`
	Experience string `yaml:"experience"`
	Applied    string `yaml:"applied"`
	Status     string `yaml:"status"`
}

// Experience is a position on the seeker's profile
type Experience struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Location    string `yaml:"location"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"` // empty while current
	Description string `yaml:"description"`
}

// Education is a degree on the seeker's profile
type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Location    string `yaml:"location"`
	Year        string `yaml:"year"`
}

// Skill is a self-assessed skill level from 0 to 100
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Achievement is a certification or award
type Achievement struct {
	Title  string `yaml:"title"`
	Issuer string `yaml:"issuer"`
	Year   string `yaml:"year"`
}

// Profile is the signed-in seeker's profile
type Profile struct {
	Name         string        `yaml:"name"`
	Email        string        `yaml:"email"`
	Phone        string        `yaml:"phone"`
	Location     string        `yaml:"location"`
	Summary      string        `yaml:"summary"`
	Experience   []Experience  `yaml:"experience"`
	Education    []Education   `yaml:"education"`
	Skills       []Skill       `yaml:"skills"`
	Achievements []Achievement `yaml:"achievements"`
}

// Completeness is the percentage of profile sections that are filled in
func (p Profile) Completeness() int {
	filled := []bool{
		p.Name != "",
		p.Email != "",
		p.Phone != "",
		p.Location != "",
		p.Summary != "",
		len(p.Experience) > 0,
		len(p.Education) > 0,
		len(p.Skills) > 0,
		len(p.Achievements) > 0,
	}
	n := 0
	for _, ok := range filled {
		if ok {
			n++
		}
	}
	return n * 100 / len(filled)
}

// Banner is a sponsored promotion on the landing page
type Banner struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Action      string `yaml:"action"`
}

// SponsoredJob is a paid job placement
type SponsoredJob struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Company  string `yaml:"company"`
	Location string `yaml:"location"`
	Salary   string `yaml:"salary"`
	Badge    string `yaml:"badge"`
}

// Sponsored is the paid content shown on the landing page
type Sponsored struct {
	Banner Banner         `yaml:"banner"`
	Jobs   []SponsoredJob `yaml:"jobs"`
}

// DashboardTab is a section of the seeker dashboard
type DashboardTab int

const (
	TabOverview DashboardTab = iota
	TabApplied
	TabSaved
	TabProfile
	dashboardTabCount
)

func (t DashboardTab) String() string {
	switch t {
	case TabApplied:
		return "Applied"
	case TabSaved:
		return "Saved"
	case TabProfile:
		return "Profile"
	default:
		return "Overview"
	}
}

// Shift moves delta tabs, wrapping at either end
func (t DashboardTab) Shift(delta int) DashboardTab {
	return DashboardTab(wrap(int(t)+delta, int(dashboardTabCount)))
}

// DashboardTabs lists the seeker dashboard tabs in display order
func DashboardTabs() []DashboardTab {
	return []DashboardTab{TabOverview, TabApplied, TabSaved, TabProfile}
}

// EmployerTab is a section of the employer dashboard
type EmployerTab int

const (
	EmployerOverview EmployerTab = iota
	EmployerPostings
	EmployerApplicants
	employerTabCount
)

func (t EmployerTab) String() string {
	switch t {
	case EmployerPostings:
		return "Postings"
	case EmployerApplicants:
		return "Applicants"
	default:
		return "Overview"
	}
}

// Shift moves delta tabs, wrapping at either end
func (t EmployerTab) Shift(delta int) EmployerTab {
	return EmployerTab(wrap(int(t)+delta, int(employerTabCount)))
}

// EmployerTabs lists the employer dashboard tabs in display order
func EmployerTabs() []EmployerTab {
	return []EmployerTab{EmployerOverview, EmployerPostings, EmployerApplicants}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
