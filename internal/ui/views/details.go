package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobboard/internal/domain"
)

// DetailsSimilar is the only rail on the details page
const DetailsSimilar = 0

func (r *Renderer) renderDetails(state ViewState, width int) string {
	if state.Job == nil {
		return r.styles.Dim.Render("Job not found. Press b to go back.")
	}
	job := *state.Job

	var b strings.Builder
	b.WriteString(r.styles.Hero.UnsetMarginBottom().Render(job.Title))
	if state.Applied[job.ID] {
		b.WriteString("  " + r.styles.Applied.Render("✓ Applied"))
	}
	if state.Saved[job.ID] {
		b.WriteString("  " + r.styles.Saved.Render("★ Saved"))
	}
	b.WriteString("\n")
	b.WriteString(job.Company)
	b.WriteString(r.styles.Dim.Render(" · " + job.Location + " · posted " + job.Posted))
	b.WriteString("\n")
	b.WriteString(r.jobRender.typeBadge(job.Type, ""))
	b.WriteString(" " + job.Experience + "  ")
	b.WriteString(r.styles.Salary.Render(job.Salary))
	b.WriteString("\n")

	body := lipgloss.NewStyle().Width(width)
	b.WriteString(r.styles.Section.Render("Job Description"))
	b.WriteString("\n")
	b.WriteString(body.Render(job.Description))
	b.WriteString("\n")

	b.WriteString(r.renderBullets("Responsibilities", job.Responsibilities, width))
	b.WriteString(r.renderBullets("Requirements", job.Requirements, width))
	b.WriteString(r.renderBullets("Benefits", job.Benefits, width))

	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("s save · a apply · v read in pager · b back"))
	b.WriteString("\n\n")

	if len(state.Rails) > DetailsSimilar {
		b.WriteString(r.renderRail(state.Rails[DetailsSimilar], width))
	}

	return b.String()
}

func (r *Renderer) renderBullets(title string, items []string, width int) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.styles.Section.Render(title))
	b.WriteString("\n")
	line := lipgloss.NewStyle().Width(width).PaddingLeft(2)
	for _, item := range items {
		b.WriteString(line.Render("• " + item))
		b.WriteString("\n")
	}
	return b.String()
}

// JobText renders a job as plain text for the pager
func JobText(job domain.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s · %s\n%s · %s · %s\nPosted %s\n\n", job.Title, job.Company, job.Location,
		job.Type, job.Experience, job.Salary, job.Posted)
	b.WriteString(job.Description)
	b.WriteString("\n")

	sections := []struct {
		name  string
		items []string
	}{
		{"Responsibilities", job.Responsibilities},
		{"Requirements", job.Requirements},
		{"Benefits", job.Benefits},
	}
	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		b.WriteString("\n" + section.name + "\n")
		for _, item := range section.items {
			b.WriteString("  • " + item + "\n")
		}
	}
	return b.String()
}
