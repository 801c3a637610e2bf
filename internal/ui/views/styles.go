package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Session       lipgloss.Style
	Hero          lipgloss.Style
	Section       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	FilterLabel   lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	Salary        lipgloss.Style
	Saved         lipgloss.Style
	Applied       lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Key           lipgloss.Style
	Desc          lipgloss.Style
	StatBox       lipgloss.Style
	Choice        lipgloss.Style
	ChoiceActive  lipgloss.Style
	Tip           lipgloss.Style
	TipPanel      lipgloss.Style
	Badge         lipgloss.Style
	Banner        lipgloss.Style
	Card          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		Session:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Hero: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		FilterLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Salary:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Saved:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Applied:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Key:           lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Desc:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			MarginRight(1),
		Choice:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		ChoiceActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		Tip:          lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		TipPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("141")).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Padding(0, 1),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("214")).
			PaddingLeft(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginRight(1),
	}
}

// GetApplicationColor returns the color for an applicant's pipeline stage
func GetApplicationColor(status string) string {
	switch status {
	case "Shortlisted":
		return "78" // green
	case "Interview Scheduled":
		return "33" // blue
	case "Under Review":
		return "214" // yellow
	default:
		return "245"
	}
}

// GetTypeColor returns the badge color for an employment type
func GetTypeColor(jobType string) string {
	switch jobType {
	case "Full-time":
		return "78" // green
	case "Part-time":
		return "33" // blue
	case "Contract":
		return "214" // yellow
	default:
		return "245"
	}
}
