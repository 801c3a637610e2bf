package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobboard/internal/domain"
)

// DashboardRecommended is the only rail on the dashboard
const DashboardRecommended = 0

type stat struct {
	label string
	value int
}

func (r *Renderer) renderDashboard(state ViewState, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Hero.Render("My Dashboard"))
	b.WriteString("\n")
	if !state.LoggedIn {
		b.WriteString(r.styles.Dim.Render("Sign in to track saved jobs and applications."))
		b.WriteString("\n")
	}

	tabs := domain.DashboardTabs()
	labels := make([]string, len(tabs))
	for i, t := range tabs {
		labels[i] = t.String()
	}
	b.WriteString(r.renderTabs(labels, int(state.DashboardTab)))
	b.WriteString("\n\n")

	switch state.DashboardTab {
	case domain.TabApplied:
		b.WriteString(r.sectionRender.RenderSectionHeader("Applied jobs", len(state.AppliedJobs)))
		b.WriteString("\n")
		b.WriteString(r.renderJobList(state.AppliedJobs, "No applications yet. Start applying to jobs that match your skills."))
	case domain.TabSaved:
		b.WriteString(r.sectionRender.RenderSectionHeader("Saved jobs", len(state.SavedJobs)))
		b.WriteString("\n")
		b.WriteString(r.renderJobList(state.SavedJobs, "No saved jobs. Press s on a job to save it for later."))
	case domain.TabProfile:
		b.WriteString(r.renderProfile(state, width))
	default:
		b.WriteString(r.renderSeekerOverview(state, width))
	}
	b.WriteString("\n\n")

	if len(state.Rails) > DashboardRecommended {
		b.WriteString(r.renderRail(state.Rails[DashboardRecommended], width))
	}

	return b.String()
}

// renderSeekerOverview shows the application pipeline. Later stages are
// estimated as fixed shares of the applications sent.
func (r *Renderer) renderSeekerOverview(state ViewState, width int) string {
	applied := len(state.AppliedJobs)
	out := r.renderStats([]stat{
		{"Applied", applied},
		{"In review", applied * 6 / 10},
		{"Interviews", applied * 3 / 10},
		{"Offers", applied / 10},
		{"Saved", len(state.SavedJobs)},
	}, width)

	if state.LoggedIn && state.Role == domain.RoleJobSeeker {
		out += "\n" + r.styles.Dim.Render(fmt.Sprintf("Profile %d%% complete", state.Profile.Completeness()))
	}
	return out
}

func (r *Renderer) renderJobList(jobs []domain.Job, empty string) string {
	if len(jobs) == 0 {
		return r.styles.Dim.Render("  " + empty)
	}
	lines := make([]string, len(jobs))
	for i, job := range jobs {
		lines[i] = fmt.Sprintf("  %s %s", job.Title, r.styles.Dim.Render("· "+job.Company+" · "+job.Location))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderEmployer(state ViewState, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Hero.Render("Employer Dashboard"))
	b.WriteString("\n")

	tabs := domain.EmployerTabs()
	labels := make([]string, len(tabs))
	for i, t := range tabs {
		labels[i] = t.String()
	}
	b.WriteString(r.renderTabs(labels, int(state.EmployerTab)))
	b.WriteString("\n\n")

	switch state.EmployerTab {
	case domain.EmployerPostings:
		b.WriteString(r.sectionRender.RenderSectionHeader("Job postings", len(state.Postings)))
		b.WriteString("\n")
		b.WriteString(r.renderPostings(state.Postings))
	case domain.EmployerApplicants:
		b.WriteString(r.sectionRender.RenderSectionHeader("Applicants", len(state.Applicants)))
		b.WriteString("\n")
		b.WriteString(r.renderApplicants(state.Applicants))
	default:
		b.WriteString(r.renderStats([]stat{
			{"Active postings", state.Stats.Postings},
			{"Total applicants", state.Stats.Applicants},
			{"Total views", state.Stats.Views},
			{"Open positions", state.Stats.Openings},
		}, width))
		b.WriteString("\n")
		b.WriteString(r.sectionRender.RenderSectionHeader("Recent applicants", len(state.Applicants)))
		b.WriteString("\n")
		b.WriteString(r.renderApplicants(state.Applicants))
	}

	return b.String()
}

func (r *Renderer) renderStats(stats []stat, width int) string {
	boxes := make([]string, 0, len(stats))
	for _, s := range stats {
		boxes = append(boxes, r.styles.StatBox.Render(
			fmt.Sprintf("%s\n%s", r.styles.Title.Render(fmt.Sprint(s.value)), r.styles.Dim.Render(s.label))))
	}

	// Stack the boxes when the terminal is too narrow for one row
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if lipgloss.Width(row) > width {
		row = lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}
	return row
}

func (r *Renderer) renderPostings(postings []domain.Posting) string {
	if len(postings) == 0 {
		return r.styles.Dim.Render("  No job postings yet.")
	}
	lines := make([]string, len(postings))
	for i, p := range postings {
		status := r.styles.StatusSuccess.Render(p.Status)
		if !p.Active() {
			status = r.styles.Dim.Render(p.Status)
		}
		typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(GetTypeColor(p.Type)))
		lines[i] = fmt.Sprintf("  %s %s %s\n    %s  %s",
			p.Title,
			typeStyle.Render(p.Type),
			status,
			r.styles.Dim.Render(p.Location+" · posted "+p.Posted),
			fmt.Sprintf("%d applicants · %d views", p.Applicants, p.Views))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderApplicants(applicants []domain.Applicant) string {
	if len(applicants) == 0 {
		return r.styles.Dim.Render("  No applicants yet.")
	}
	lines := make([]string, len(applicants))
	for i, a := range applicants {
		status := lipgloss.NewStyle().Foreground(lipgloss.Color(GetApplicationColor(a.Status))).Render(a.Status)
		lines[i] = fmt.Sprintf("  %s %s  %s",
			a.Name,
			r.styles.Dim.Render("· "+a.Job+" · "+a.Experience+" · applied "+a.Applied),
			status)
	}
	return strings.Join(lines, "\n")
}
