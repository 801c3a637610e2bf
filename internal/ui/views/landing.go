package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobboard/internal/domain"
)

// Landing rails, in display order
const (
	LandingFeatured = iota
	LandingCompanies
)

func (r *Renderer) renderLanding(state ViewState, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Hero.Render("Find Your Dream Job"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Discover opportunities across Nepal. Your next career move is just a search away."))
	b.WriteString("\n\n")

	if banner := r.renderBanner(state.Sponsored.Banner); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	if len(state.Rails) > LandingFeatured {
		b.WriteString(r.renderRail(state.Rails[LandingFeatured], width))
		b.WriteString("\n")
	}

	if state.ShowCategories && len(state.Categories) > 0 {
		b.WriteString(r.styles.Section.Render("Trending Job Categories"))
		b.WriteString("\n")
		b.WriteString(r.renderCategories(state.Categories, width))
		b.WriteString("\n\n")
	}

	if len(state.Rails) > LandingCompanies {
		b.WriteString(r.renderRail(state.Rails[LandingCompanies], width))
	}

	if len(state.Sponsored.Jobs) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Section.Render("Sponsored Jobs"))
		b.WriteString("\n")
		b.WriteString(r.renderSponsoredJobs(state.Sponsored.Jobs))
	}

	return b.String()
}

// renderBanner renders the sponsored promotion on one line
func (r *Renderer) renderBanner(banner domain.Banner) string {
	if banner.Title == "" {
		return ""
	}
	text := r.styles.Dim.Render("Sponsored ") + r.styles.Highlight.Render(banner.Title)
	if banner.Description != "" {
		text += r.styles.Dim.Render(" · ") + banner.Description
	}
	if banner.Action != "" {
		text += "  " + r.styles.Key.Render("["+banner.Action+"]")
	}
	return r.styles.Banner.Render(text)
}

// renderSponsoredJobs lists the paid placements one per line
func (r *Renderer) renderSponsoredJobs(jobs []domain.SponsoredJob) string {
	lines := make([]string, len(jobs))
	for i, job := range jobs {
		badge := ""
		if job.Badge != "" {
			badge = r.styles.Badge.Render(job.Badge) + " "
		}
		lines[i] = fmt.Sprintf("  %s%s %s %s",
			badge,
			job.Title,
			r.styles.Dim.Render("· "+job.Company+" · "+job.Location),
			r.styles.Salary.Render(job.Salary))
	}
	return strings.Join(lines, "\n")
}
