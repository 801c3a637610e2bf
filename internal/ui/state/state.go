package state

import (
	"jobboard/internal/domain"
	"jobboard/internal/ui/logic"
)

// AppState contains all the application state
type AppState struct {
	// Navigation
	Page         domain.Page // page currently shown
	PreviousPage domain.Page // page to return to from details and auth
	SelectedJob  string      // job id shown on the details page

	// Session stub
	Role        domain.Role
	LoggedIn    bool
	PendingRole domain.Role // role highlighted on the auth page

	// Dashboards
	DashboardTab domain.DashboardTab
	EmployerTab  domain.EmployerTab
	Profile      domain.Profile // seeker profile, edited in memory

	// Listings
	Filter   logic.JobFilter
	SortMode logic.SortMode
	Listing  *logic.Navigator

	// UI state
	Width            int
	Height           int
	FocusedRail      int // index into the current page's rails, -1 for none
	ShowHelp         bool
	HelpScrollOffset int
	ShowInfo         bool
	InfoContent      string
	StatusMessage    string
}

// NewAppState creates a new application state
func NewAppState(start domain.Page) *AppState {
	if start == "" {
		start = domain.PageLanding
	}
	return &AppState{
		Page:         start,
		PreviousPage: domain.PageLanding,
		PendingRole:  domain.RoleJobSeeker,
		Listing:      logic.NewNavigator(10),
		FocusedRail:  0,
	}
}

// Navigate switches page and reports whether the page actually changed
func (s *AppState) Navigate(to domain.Page) (from domain.Page, changed bool) {
	from = s.Page
	if from == to {
		return from, false
	}
	if from != domain.PageAuth {
		s.PreviousPage = from
	}
	s.Page = to
	s.FocusedRail = 0
	return from, true
}

// OpenJob shows the details page for id
func (s *AppState) OpenJob(id string) (from domain.Page, changed bool) {
	s.SelectedJob = id
	from, changed = s.Navigate(domain.PageDetails)
	if !changed {
		// Moving between jobs on the details page still counts as a page change
		// so the similar-jobs rail is rebuilt.
		return from, true
	}
	return from, changed
}

// Back returns from details or auth to the page the user came from
func (s *AppState) Back() (from domain.Page, changed bool) {
	target := s.PreviousPage
	if target == "" || target == s.Page || target == domain.PageDetails {
		target = domain.PageListings
	}
	return s.Navigate(target)
}

// Login signs in with role and returns the page to show next
func (s *AppState) Login(role domain.Role) domain.Page {
	s.Role = role
	s.LoggedIn = role != domain.RoleNone
	if role == domain.RoleEmployer {
		return domain.PageEmployer
	}
	return domain.PageLanding
}

// Logout clears the session and returns the page to show next
func (s *AppState) Logout() domain.Page {
	s.Role = domain.RoleNone
	s.LoggedIn = false
	s.PendingRole = domain.RoleJobSeeker
	return domain.PageLanding
}

// CycleTab moves the current dashboard's tab by delta and returns the new
// tab's label. It reports false on pages without tabs.
func (s *AppState) CycleTab(delta int) (string, bool) {
	switch s.Page {
	case domain.PageDashboard:
		s.DashboardTab = s.DashboardTab.Shift(delta)
		return s.DashboardTab.String(), true
	case domain.PageEmployer:
		s.EmployerTab = s.EmployerTab.Shift(delta)
		return s.EmployerTab.String(), true
	}
	return "", false
}

// IsSeeker reports whether a job seeker is signed in
func (s *AppState) IsSeeker() bool {
	return s.LoggedIn && s.Role == domain.RoleJobSeeker
}

// SetSize records the terminal size
func (s *AppState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}
