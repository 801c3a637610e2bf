package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jobboard/internal/domain"
	"jobboard/internal/eventbus"
	inputtypes "jobboard/internal/ui/input/types"
	"jobboard/internal/ui/views"
)

// helpPagerHeight is large enough that the help text is never scrolled
const helpPagerHeight = 1 << 10

// processAction executes a single action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }

	// Navigation
	case inputtypes.NavigateAction:
		m.navigateListing(a.Direction)
	case inputtypes.GoToPageAction:
		return m.goTo(a.Page)
	case inputtypes.BackAction:
		from, changed := m.state.Back()
		if changed {
			return m.changePage(from, m.state.Page)
		}
	case inputtypes.OpenJobAction:
		if job, ok := m.cursorJob(); ok {
			return m.openJob(job.ID)
		}

	// Carousels
	case inputtypes.RailPreviousAction:
		if r := m.focusedRail(); r != nil {
			r.Previous()
		}
	case inputtypes.RailNextAction:
		if r := m.focusedRail(); r != nil {
			r.Next()
		}
	case inputtypes.RailJumpAction:
		if r := m.focusedRail(); r != nil {
			r.JumpTo(a.Index)
		}
	case inputtypes.RailSelectAction:
		return m.selectRailItem()
	case inputtypes.ToggleAutoplayAction:
		if r := m.focusedRail(); r != nil {
			verb := "paused"
			if r.ToggleAutoplay() {
				verb = "resumed"
			}
			m.state.StatusMessage = fmt.Sprintf("Autoplay %s for %s", verb, r.Title())
		}
	case inputtypes.FocusNextRailAction:
		m.focusNextRail()

	// Jobs
	case inputtypes.ToggleSaveAction:
		return m.signedIn("save jobs", func(job domain.Job) tea.Cmd {
			return m.cmdExecutor.ExecuteToggleSave(job)
		})
	case inputtypes.ApplyAction:
		return m.signedIn("apply", func(job domain.Job) tea.Cmd {
			return m.cmdExecutor.ExecuteApply(job)
		})
	case inputtypes.ViewDescriptionAction:
		if job, ok := m.targetJob(); ok {
			return m.openPager(pagerDescription, views.JobText(job))
		}

	// Listings
	case inputtypes.CycleFilterAction:
		switch a.Field {
		case "location":
			m.state.Filter.CycleLocation(m.catalog.Locations())
		case "type":
			m.state.Filter.CycleType(m.catalog.Types())
		case "experience":
			m.state.Filter.CycleExperience(m.catalog.Experiences())
		}
		m.filterChanged()
	case inputtypes.ClearFilterAction:
		m.state.Filter.Clear()
		m.filterChanged()
		m.state.StatusMessage = "Filters cleared"
	case inputtypes.CycleSortAction:
		m.state.SortMode = m.state.SortMode.Next()
		m.refreshListings()
		m.state.StatusMessage = fmt.Sprintf("Sorted by %s", m.state.SortMode)

	// Dashboards
	case inputtypes.CycleTabAction:
		m.state.CycleTab(a.Delta)

	// Assistant
	case inputtypes.ToggleAssistantAction:
		m.assistant.Toggle()
	case inputtypes.NextTipAction:
		m.assistant.Next()

	// Session
	case inputtypes.ChooseRoleAction:
		m.state.PendingRole = a.Role
	case inputtypes.LoginAction:
		return m.goTo(m.cmdExecutor.ExecuteLogin(m.state.PendingRole))
	case inputtypes.LogoutAction:
		return m.goTo(m.cmdExecutor.ExecuteLogout())

	// Text input. Search applies as the user types, the summary on enter.
	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.state.Filter.Query = a.Text
			m.filterChanged()
		}
	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.state.Filter.Query = a.Text
			m.filterChanged()
		case inputtypes.ModeSummary:
			m.updateSummary(a.Text)
		}
	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.state.Filter.Query = m.searchBackup
			m.filterChanged()
		}

	// Overlays
	case inputtypes.ToggleHelpAction:
		return m.toggleHelp()
	case inputtypes.ScrollHelpAction:
		m.state.HelpScrollOffset = max(m.state.HelpScrollOffset+a.Delta, 0)
	}

	return nil
}

func (m *Model) navigateListing(direction string) {
	nav := m.state.Listing
	switch direction {
	case "up":
		nav.MoveUp()
	case "down":
		nav.MoveDown()
	case "pageup":
		nav.PageUp()
	case "pagedown":
		nav.PageDown()
	case "home":
		nav.Home()
	case "end":
		nav.End()
	}
}

// filterChanged refreshes the listings and returns the cursor to the top
func (m *Model) filterChanged() {
	m.refreshListings()
	m.state.Listing.Home()
}

// updateSummary replaces the profile summary, keeping the old one when the
// new text is blank
func (m *Model) updateSummary(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		m.state.StatusMessage = "Summary cannot be empty"
		return
	}
	m.state.Profile.Summary = text
	m.state.StatusMessage = "Profile summary updated"
	m.publish(eventbus.ProfileSavedEvent{Field: "summary"})
}

// signedIn runs fn on the current job for any signed-in user, and sends
// anonymous users to sign in first
func (m *Model) signedIn(what string, fn func(domain.Job) tea.Cmd) tea.Cmd {
	job, ok := m.targetJob()
	if !ok {
		return nil
	}
	if !m.state.LoggedIn {
		m.state.PendingRole = domain.RoleJobSeeker
		m.state.StatusMessage = fmt.Sprintf("Sign in to %s", what)
		return m.goTo(domain.PageAuth)
	}
	return fn(job)
}

func (m *Model) toggleHelp() tea.Cmd {
	switch {
	case m.state.ShowInfo:
		m.state.ShowInfo = false
		m.state.InfoContent = ""
		m.state.HelpScrollOffset = 0
		return nil
	case m.state.ShowHelp:
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
		return nil
	}
	content := m.renderer.RenderHelpContent(m.inputHandler.Keys(), helpPagerHeight, 0)
	return m.openPager(pagerHelp, content)
}

// openPager shows content in ov, or in a popup when no program is attached
func (m *Model) openPager(kind pagerKind, content string) tea.Cmd {
	if m.pager == nil || m.program == nil {
		m.showPopup(kind, content)
		return nil
	}
	return m.pager.pagerCmd(kind, content)
}
