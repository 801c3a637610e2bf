package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// skillBarWidth is the number of cells in a full skill bar
const skillBarWidth = 10

func (r *Renderer) renderProfile(state ViewState, width int) string {
	if !state.LoggedIn {
		return r.styles.Dim.Render("  Sign in to see your profile.")
	}
	p := state.Profile
	inner := max(width-2, 10)

	var b strings.Builder
	b.WriteString(r.styles.Highlight.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(joinNonEmpty(" · ", p.Email, p.Phone, p.Location)))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("Profile %d%% complete", p.Completeness())))
	b.WriteString("\n")

	b.WriteString(r.styles.Section.Render("About"))
	b.WriteString(r.styles.Dim.Render("  e to edit"))
	b.WriteString("\n")
	if state.InputPrompt != "" {
		b.WriteString(r.styles.FilterLabel.Render(state.InputPrompt))
		b.WriteString(state.TextInput)
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("enter to save · esc to cancel"))
	} else {
		b.WriteString(lipgloss.NewStyle().Width(inner).PaddingLeft(2).Render(p.Summary))
	}
	b.WriteString("\n")

	b.WriteString(r.sectionRender.RenderSectionHeader("Experience", len(p.Experience)))
	for _, e := range p.Experience {
		end := e.End
		if end == "" {
			end = "Present"
		}
		b.WriteString(fmt.Sprintf("\n  %s %s\n    %s\n",
			e.Title,
			r.styles.Dim.Render("· "+e.Company),
			r.styles.Dim.Render(joinNonEmpty(" · ", e.Location, e.Start+" – "+end))))
		b.WriteString(lipgloss.NewStyle().Width(inner).PaddingLeft(4).Render(e.Description))
	}
	b.WriteString("\n")

	b.WriteString(r.sectionRender.RenderSectionHeader("Education", len(p.Education)))
	for _, e := range p.Education {
		b.WriteString(fmt.Sprintf("\n  %s %s", e.Degree, r.styles.Dim.Render("· "+joinNonEmpty(" · ", e.Institution, e.Location, e.Year))))
	}
	b.WriteString("\n")

	b.WriteString(r.sectionRender.RenderSectionHeader("Skills", len(p.Skills)))
	for _, s := range p.Skills {
		b.WriteString(fmt.Sprintf("\n  %-14s %s %3d%%", s.Name, r.skillBar(s.Level), s.Level))
	}
	b.WriteString("\n")

	b.WriteString(r.sectionRender.RenderSectionHeader("Achievements", len(p.Achievements)))
	for _, a := range p.Achievements {
		b.WriteString(fmt.Sprintf("\n  %s %s", a.Title, r.styles.Dim.Render("· "+joinNonEmpty(" · ", a.Issuer, a.Year))))
	}

	return b.String()
}

// skillBar renders level (0-100) as a bar of skillBarWidth cells
func (r *Renderer) skillBar(level int) string {
	filled := min(max(level, 0), 100) * skillBarWidth / 100
	return r.styles.Salary.Render(strings.Repeat("█", filled)) +
		r.styles.Dim.Render(strings.Repeat("░", skillBarWidth-filled))
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
