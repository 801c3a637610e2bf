package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// SectionRenderer handles rendering of titled sections with a count
type SectionRenderer struct {
	styles *Styles
}

// NewSectionRenderer creates a new section renderer
func NewSectionRenderer(styles *Styles) *SectionRenderer {
	return &SectionRenderer{
		styles: styles,
	}
}

// RenderSectionHeader renders "▼ Title (n)", or "▶ Title (0)" when empty
func (s *SectionRenderer) RenderSectionHeader(title string, count int) string {
	arrow := "▶"
	if count > 0 {
		arrow = "▼"
	}
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return s.styles.Section.Render(fmt.Sprintf("%s %s", arrow, title)) +
		countStyle.Render(fmt.Sprintf(" (%d)", count))
}
