package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobboard/internal/domain"
)

// JobRenderer handles rendering of job rows
type JobRenderer struct {
	styles *Styles
}

// NewJobRenderer creates a new job renderer
func NewJobRenderer(styles *Styles) *JobRenderer {
	return &JobRenderer{
		styles: styles,
	}
}

// RenderJob renders a single listing row
func (r *JobRenderer) RenderJob(job domain.Job, isSelected, isSaved, isApplied bool, searchQuery string) string {
	// Background color for selection
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	var parts []string

	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}
	parts = append(parts, bg.Render(cursor))

	marker := " "
	markerStyle := bg
	switch {
	case isApplied:
		marker = "✓"
		markerStyle = r.styles.Applied.Background(lipgloss.Color(bgColor))
	case isSaved:
		marker = "★"
		markerStyle = r.styles.Saved.Background(lipgloss.Color(bgColor))
	}
	parts = append(parts, markerStyle.Render(marker), bg.Render(" "))

	// Title with search highlighting
	titleStyle := bg.Bold(true)
	parts = append(parts, r.highlightMatch(job.Title, searchQuery,
		r.styles.Highlight.Background(lipgloss.Color(bgColor)), titleStyle))

	parts = append(parts, bg.Render(" · "))
	parts = append(parts, r.highlightMatch(job.Company, searchQuery,
		r.styles.Highlight.Background(lipgloss.Color(bgColor)), bg))

	parts = append(parts, bg.Render(" "))
	parts = append(parts, r.typeBadge(job.Type, bgColor))

	details := fmt.Sprintf(" %s · %s · ", job.Location, job.Experience)
	parts = append(parts, r.styles.Dim.Background(lipgloss.Color(bgColor)).Render(details))
	parts = append(parts, r.styles.Salary.Background(lipgloss.Color(bgColor)).Render(job.Salary))

	return strings.Join(parts, "")
}

func (r *JobRenderer) typeBadge(jobType, bgColor string) string {
	if jobType == "" {
		return ""
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(GetTypeColor(jobType))).
		Background(lipgloss.Color(bgColor))
	return style.Render("[" + jobType + "]")
}

// highlightMatch highlights the first case-insensitive match of query
func (r *JobRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
