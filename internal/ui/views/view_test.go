package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"jobboard/internal/carousel"
	"jobboard/internal/domain"
	"jobboard/internal/ui/input/keys"
	"jobboard/internal/ui/logic"
)

var testJobs = []domain.Job{
	{ID: "1", Title: "Senior Frontend Developer", Company: "TechCorp Nepal", Location: "Kathmandu, Nepal", Type: "Full-time", Experience: "3-5 years", Salary: "NPR 80,000 - 120,000", Description: "Build modern web apps.", Requirements: []string{"React"}},
	{ID: "2", Title: "UX/UI Designer", Company: "Design Studio", Location: "Pokhara, Nepal", Type: "Contract", Experience: "2-4 years", Salary: "NPR 60,000 - 90,000"},
	{ID: "3", Title: "Backend Developer (Node.js)", Company: "Cloud Solutions", Location: "Lalitpur, Nepal", Type: "Full-time", Experience: "2-5 years", Salary: "NPR 70,000 - 100,000"},
}

func baseState(page domain.Page) ViewState {
	return ViewState{
		Width:     120,
		Height:    40,
		Page:      page,
		HelpModel: help.New(),
		Keys:      keys.Default(),
		Saved:     map[string]bool{},
		Applied:   map[string]bool{},
	}
}

func plain(s string) string {
	return ansi.Strip(s)
}

func TestRenderLanding(t *testing.T) {
	st := baseState(domain.PageLanding)
	st.ShowCategories = true
	st.Categories = []domain.Category{{Name: "Technology", Icon: "💻", Count: 245}}
	st.Rails = []*carousel.Rail{
		carousel.NewRail("Featured Jobs", JobItems(testJobs), carousel.DefaultOptions()),
		carousel.NewRail("Top Companies Hiring", CompanyItems([]domain.Company{{Name: "TechCorp Nepal", Industry: "Technology", Openings: 12}}), carousel.DefaultOptions()),
	}

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "jobboard")
	assert.Contains(t, out, "Find Your Dream Job")
	assert.Contains(t, out, "Featured Jobs")
	assert.Contains(t, out, "Trending Job Categories")
	assert.Contains(t, out, "245 jobs")
	assert.Contains(t, out, "12 open positions")
	assert.Contains(t, out, "Guest")
}

func TestRenderLandingHidesCategories(t *testing.T) {
	st := baseState(domain.PageLanding)
	st.Categories = []domain.Category{{Name: "Technology", Count: 245}}
	out := plain(NewRenderer().Render(st))
	assert.NotContains(t, out, "Trending Job Categories")
}

func TestRenderListings(t *testing.T) {
	st := baseState(domain.PageListings)
	st.Listings = testJobs[:2]
	st.TotalJobs = 8
	st.Cursor = 1
	st.WindowStart, st.WindowEnd = 0, 2
	st.Saved["2"] = true
	st.Filter = logic.JobFilter{Location: "Pokhara, Nepal"}

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Showing 2 of 8 jobs")
	assert.Contains(t, out, "Location (L): Pokhara, Nepal")
	assert.Contains(t, out, "Type (T): all")
	assert.Contains(t, out, "▸ ★ UX/UI Designer")
	assert.Contains(t, out, "Sort (S): newest")
}

func TestRenderListingsEmptyKeepsFilterBar(t *testing.T) {
	st := baseState(domain.PageListings)
	st.TotalJobs = 8
	st.Filter = logic.JobFilter{Query: "astronaut"}

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Showing 0 of 8 jobs")
	assert.Contains(t, out, "Search: astronaut")
	assert.Contains(t, out, "No jobs found")
}

func TestRenderListingsScrollIndicators(t *testing.T) {
	st := baseState(domain.PageListings)
	st.Listings = testJobs
	st.TotalJobs = 3
	st.Cursor = 1
	st.WindowStart, st.WindowEnd = 1, 2

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "↑ 1 more above ↑")
	assert.Contains(t, out, "↓ 1 more below ↓")
}

func TestRenderDetails(t *testing.T) {
	st := baseState(domain.PageDetails)
	job := testJobs[0]
	st.Job = &job
	st.Applied["1"] = true
	st.Rails = []*carousel.Rail{carousel.NewRail("Similar Jobs", JobItems(testJobs[1:]), carousel.DefaultOptions())}

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Senior Frontend Developer")
	assert.Contains(t, out, "✓ Applied")
	assert.NotContains(t, out, "★ Saved")
	assert.Contains(t, out, "Requirements")
	assert.Contains(t, out, "• React")
	assert.Contains(t, out, "Similar Jobs")
}

func TestRenderDetailsMissingJob(t *testing.T) {
	out := plain(NewRenderer().Render(baseState(domain.PageDetails)))
	assert.Contains(t, out, "Job not found")
}

func TestRenderDashboard(t *testing.T) {
	st := baseState(domain.PageDashboard)
	st.LoggedIn = true
	st.Role = domain.RoleJobSeeker
	st.SavedJobs = testJobs[:1]
	st.AppliedJobs = testJobs
	st.Profile = domain.Profile{Name: "John Doe", Summary: "Builds things"}

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "● Job Seeker")
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "In review")
	assert.Contains(t, out, "Profile 22% complete")
	assert.NotContains(t, out, "Sign in to track")

	st.DashboardTab = domain.TabApplied
	out = plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Applied jobs (3)")
	assert.Contains(t, out, "UX/UI Designer")

	st.DashboardTab = domain.TabSaved
	st.SavedJobs = nil
	out = plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Saved jobs (0)")
	assert.Contains(t, out, "No saved jobs")
}

func TestRenderDashboardSignedOut(t *testing.T) {
	st := baseState(domain.PageDashboard)
	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Sign in to track saved jobs and applications.")

	st.DashboardTab = domain.TabProfile
	out = plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Sign in to see your profile.")
}

func TestRenderProfile(t *testing.T) {
	st := baseState(domain.PageDashboard)
	st.LoggedIn = true
	st.Role = domain.RoleJobSeeker
	st.DashboardTab = domain.TabProfile
	st.Profile = domain.Profile{
		Name:       "John Doe",
		Email:      "john.doe@example.com",
		Summary:    "Builds things",
		Experience: []domain.Experience{{Title: "Frontend Developer", Company: "Digital Solutions", Start: "2019-06"}},
		Skills:     []domain.Skill{{Name: "Go", Level: 80}},
	}

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "john.doe@example.com")
	assert.Contains(t, out, "Builds things")
	assert.Contains(t, out, "2019-06 – Present")
	assert.Contains(t, out, "████████░░  80%")
	assert.Contains(t, out, "Education (0)")

	st.InputPrompt = "Summary: "
	st.TextInput = "Edited text"
	out = plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Summary: Edited text")
	assert.Contains(t, out, "enter to save")
	assert.NotContains(t, out, "Builds things")
}

func TestRenderEmployer(t *testing.T) {
	st := baseState(domain.PageEmployer)
	st.LoggedIn = true
	st.Role = domain.RoleEmployer
	st.Stats = EmployerStats{Postings: 3, Applicants: 135, Views: 985, Openings: 56}
	st.Postings = []domain.Posting{{ID: "p1", Title: "UX Designer", Type: "Full-time", Location: "Lalitpur", Applicants: 28, Views: 215, Posted: "1 week ago", Status: "active"}}
	st.Applicants = []domain.Applicant{{ID: "a1", Name: "Priya Sharma", Job: "UX Designer", Experience: "3 years", Applied: "3 days ago", Status: "Shortlisted"}}

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Employer Dashboard")
	assert.Contains(t, out, "135")
	assert.Contains(t, out, "Total applicants")
	assert.Contains(t, out, "Recent applicants (1)")
	assert.Contains(t, out, "Priya Sharma")

	st.EmployerTab = domain.EmployerPostings
	out = plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Job postings (1)")
	assert.Contains(t, out, "28 applicants · 215 views")
	assert.NotContains(t, out, "Total applicants")

	st.EmployerTab = domain.EmployerApplicants
	st.Applicants = nil
	out = plain(NewRenderer().Render(st))
	assert.Contains(t, out, "No applicants yet.")
}

func TestRenderAssistant(t *testing.T) {
	st := baseState(domain.PageListings)
	st.Hint = "Save interesting jobs"
	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "✦ Save interesting jobs")
	assert.Contains(t, out, "(i for tips)")

	st.Hint = ""
	st.AssistantOpen = true
	st.Tips = []string{"first tip", "second tip"}
	st.TipIndex = 1
	out = plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Job Assistant")
	assert.Contains(t, out, "tip 2 of 2")
	assert.Contains(t, out, "Quick Tips")
	assert.Contains(t, out, "▸ second tip")
	assert.NotContains(t, out, "(i for tips)")
}

func TestRenderLandingSponsored(t *testing.T) {
	st := baseState(domain.PageLanding)
	st.Sponsored = domain.Sponsored{
		Banner: domain.Banner{Title: "Premium Courses", Description: "50% off", Action: "Learn More"},
		Jobs:   []domain.SponsoredJob{{ID: "s1", Title: "Product Manager", Company: "Innovation Labs", Badge: "Premium"}},
	}

	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "Premium Courses")
	assert.Contains(t, out, "[Learn More]")
	assert.Contains(t, out, "Sponsored Jobs")
	assert.Contains(t, out, "Premium")
	assert.Contains(t, out, "Product Manager")
	assert.Contains(t, out, "Innovation Labs")
}

func TestRenderAuth(t *testing.T) {
	st := baseState(domain.PageAuth)
	st.PendingRole = domain.RoleEmployer
	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "1  Job Seeker")
	assert.Contains(t, out, "2  Employer")
	assert.Contains(t, out, "enter to sign in")
}

func TestRenderHelpOverlay(t *testing.T) {
	st := baseState(domain.PageLanding)
	st.ShowHelp = true
	out := plain(NewRenderer().Render(st))
	assert.Contains(t, out, "jobboard help")
	assert.Contains(t, out, "Carousels")
}

func TestScrollLines(t *testing.T) {
	content := strings.Repeat("line\n", 19) + "last"
	out := ScrollLines(content, 6, 100)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "more above")
	assert.Equal(t, "last", lines[5])

	assert.Equal(t, "a\nb", ScrollLines("a\nb", 10, 0))
}

func TestJobText(t *testing.T) {
	text := JobText(testJobs[0])
	assert.Contains(t, text, "Senior Frontend Developer\nTechCorp Nepal · Kathmandu, Nepal")
	assert.Contains(t, text, "Requirements\n  • React")
	assert.NotContains(t, text, "Benefits")
}

func TestPopupOverlayKeepsBaseWidth(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	base := strings.Repeat(strings.Repeat("x", 40)+"\n", 9) + strings.Repeat("x", 40)
	out := pr.RenderPopupOverlay(base, "hi", 10, 40, NewStyles().InfoBox)
	lines := strings.Split(plain(out), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, plain(out), "hi")
	for _, line := range lines {
		assert.Equal(t, 40, ansi.StringWidth(line))
	}
}

func TestRenderClipsBodyToKeepStatusAndFooter(t *testing.T) {
	st := baseState(domain.PageDashboard)
	st.Height = 16
	st.DashboardTab = domain.TabApplied
	st.AppliedJobs = append(append(testJobs, testJobs...), testJobs...)
	st.Hint = "Track all your applications in one place."
	st.StatusMessage = "Saved UX/UI Designer"

	out := plain(NewRenderer().Render(st))
	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 16)
	assert.Contains(t, out, "↓ (more below)")
	assert.Contains(t, out, "✦ Track all your applications")
	assert.Contains(t, out, "Saved UX/UI Designer")
	assert.Contains(t, out, "help")
}
