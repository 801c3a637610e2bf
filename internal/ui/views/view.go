package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"jobboard/internal/carousel"
	"jobboard/internal/domain"
	"jobboard/internal/ui/input/keys"
	"jobboard/internal/ui/logic"
)

// EmployerStats are the figures shown on the employer overview
type EmployerStats struct {
	Postings   int // active postings
	Applicants int
	Views      int
	Openings   int // open positions across featured companies
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Page          domain.Page
	Role          domain.Role
	LoggedIn      bool
	PendingRole   domain.Role
	StatusMessage string

	// Active text input, rendered by the input handler
	InputPrompt string
	TextInput   string

	// Carousels on the current page, in display order
	Rails []*carousel.Rail

	// Landing
	Categories     []domain.Category
	ShowCategories bool
	Sponsored      domain.Sponsored

	// Listings
	Listings    []domain.Job
	TotalJobs   int
	Filter      logic.JobFilter
	SortMode    logic.SortMode
	Cursor      int
	WindowStart int
	WindowEnd   int
	Saved       map[string]bool
	Applied     map[string]bool

	// Details
	Job *domain.Job

	// Dashboard
	DashboardTab domain.DashboardTab
	SavedJobs    []domain.Job
	AppliedJobs  []domain.Job
	Profile      domain.Profile

	// Employer
	EmployerTab domain.EmployerTab
	Stats       EmployerStats
	Postings    []domain.Posting
	Applicants  []domain.Applicant

	// Assistant
	AssistantOpen bool
	Tips          []string
	TipIndex      int
	Hint          string

	// Overlays
	ShowHelp         bool
	HelpScrollOffset int
	HelpModel        help.Model
	Keys             keys.KeyMap
	ShowInfo         bool
	InfoContent      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	jobRender     *JobRenderer
	sectionRender *SectionRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		jobRender:     NewJobRenderer(styles),
		sectionRender: NewSectionRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	// Account for main container padding
	contentWidth := max(width-4, 20)

	var body string
	switch state.Page {
	case domain.PageListings:
		body = r.renderListings(state, contentWidth)
	case domain.PageDetails:
		body = r.renderDetails(state, contentWidth)
	case domain.PageDashboard:
		body = r.renderDashboard(state, contentWidth)
	case domain.PageEmployer:
		body = r.renderEmployer(state, contentWidth)
	case domain.PageAuth:
		body = r.renderAuth(state)
	default:
		body = r.renderLanding(state, contentWidth)
	}

	bottom := &strings.Builder{}
	if tips := r.renderAssistant(state, contentWidth); tips != "" {
		bottom.WriteString("\n\n")
		bottom.WriteString(tips)
	}

	if state.StatusMessage != "" {
		bottom.WriteString("\n\n")
		bottom.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	// Footer help (hidden while an overlay is open)
	if !state.ShowHelp && !state.ShowInfo {
		footer := state.HelpModel.View(state.Keys)
		if footer == "" {
			footer = "Press ? for help"
		}
		bottom.WriteString("\n\n")
		bottom.WriteString(r.styles.Help.Render(footer))
	}

	// The page body gives way so the header, status and footer stay on
	// screen. Four lines go to the header, its gap and the main padding.
	if state.Height > 0 {
		body = ScrollLines(body, state.Height-4-strings.Count(bottom.String(), "\n"), 0)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderHeader(state, contentWidth))
	content.WriteString("\n\n")
	content.WriteString(body)
	content.WriteString(bottom.String())

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowInfo && state.InfoContent != "" {
		info := ScrollLines(state.InfoContent, state.Height-4, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, info, state.Height, width, r.styles.InfoBox)
	}

	if state.ShowHelp {
		helpContent := r.RenderHelpContent(state.Keys, state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, width, r.styles.InfoBox)
	}

	return finalContent
}

type tab struct {
	page  domain.Page
	label string
}

// renderTabs renders a row of section tabs with the active one highlighted
func (r *Renderer) renderTabs(labels []string, active int) string {
	rendered := make([]string, len(labels))
	for i, label := range labels {
		style := r.styles.Tab
		if i == active {
			style = r.styles.ActiveTab
		}
		rendered[i] = style.Render(label)
	}
	return strings.Join(rendered, " ") + r.styles.Dim.Render("   [ ] switch")
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	logo := r.styles.Title.Render("jobboard")

	tabs := []tab{
		{domain.PageLanding, "Home"},
		{domain.PageListings, "Jobs"},
		{domain.PageDashboard, "Dashboard"},
	}
	if state.Role == domain.RoleEmployer {
		tabs[2] = tab{domain.PageEmployer, "Employer"}
	}

	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := r.styles.Tab
		if t.page == state.Page || (t.page == domain.PageListings && state.Page == domain.PageDetails) {
			style = r.styles.ActiveTab
		}
		rendered = append(rendered, style.Render(t.label))
	}
	left := logo + "  " + strings.Join(rendered, " ")

	session := r.styles.Dim.Render("Guest")
	if state.LoggedIn {
		session = r.styles.Session.Render("● " + state.Role.Label())
	}

	// Right-align the session badge
	padding := max(width-lipgloss.Width(left)-lipgloss.Width(session), 2)
	return left + strings.Repeat(" ", padding) + session
}

func (r *Renderer) renderRail(rail *carousel.Rail, width int) string {
	if rail == nil {
		return ""
	}
	return rail.View(width)
}

// RenderHelpContent renders the key reference, scrolled to fit height
func (r *Renderer) RenderHelpContent(km keys.KeyMap, height int, scrollOffset int) string {
	var help strings.Builder

	help.WriteString(r.styles.Title.Render("jobboard help"))
	help.WriteString("\n")

	sections := km.Sections()
	for i, column := range km.FullHelp() {
		if i < len(sections) {
			help.WriteString(r.styles.Section.Render(sections[i]))
			help.WriteString("\n")
		}
		for _, b := range column {
			h := b.Help()
			if h.Key == "" {
				continue
			}
			help.WriteString(fmt.Sprintf("  %s  %s\n", r.styles.Key.Render(fmt.Sprintf("%-8s", h.Key)), r.styles.Desc.Render(h.Desc)))
		}
	}

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Search prefixes: location:pokhara type:contract exp:3-5"))

	return ScrollLines(help.String(), height-4, scrollOffset)
}

// ScrollLines keeps a window of visibleHeight lines starting at offset,
// replacing the edge lines with indicators when content is cut
func ScrollLines(content string, visibleHeight, offset int) string {
	lines := strings.Split(content, "\n")
	total := len(lines)
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if total <= visibleHeight {
		return content
	}

	maxOffset := total - visibleHeight
	offset = min(max(offset, 0), maxOffset)
	end := offset + visibleHeight
	lines = lines[offset:end]

	if offset > 0 {
		lines[0] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↑ (more above)")
	}
	if end < total {
		lines[len(lines)-1] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↓ (more below)")
	}
	return strings.Join(lines, "\n")
}
