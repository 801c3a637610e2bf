package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jobboard/internal/domain"
	"jobboard/internal/ui/input/keys"
	"jobboard/internal/ui/input/types"
)

type NormalMode struct {
	keys keys.KeyMap
}

func NewNormalMode(km keys.KeyMap) *NormalMode {
	return &NormalMode{keys: km}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys

	if key.Matches(msg, k.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// The help overlay swallows everything except scrolling and closing
	if ctx.ShowingHelp() {
		switch {
		case key.Matches(msg, k.Up):
			return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
		case key.Matches(msg, k.Down):
			return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
		case key.Matches(msg, k.Help, k.Back, k.Quit):
			return []types.Action{types.ToggleHelpAction{}}, true
		}
		return nil, true
	}

	var actions []types.Action
	switch ctx.Page() {
	case domain.PageAuth:
		actions = m.authKey(msg)
	case domain.PageListings:
		actions = m.listingsKey(msg, ctx)
	case domain.PageDetails:
		actions = m.detailsKey(msg, ctx)
	case domain.PageDashboard:
		actions = m.dashboardKey(msg, ctx)
	case domain.PageEmployer:
		actions = m.tabKey(msg)
	}
	if actions != nil {
		return actions, true
	}

	if actions = m.railKey(msg, ctx); actions != nil {
		return actions, true
	}

	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Landing):
		return []types.Action{types.GoToPageAction{Page: domain.PageLanding}}, true
	case key.Matches(msg, k.Listings):
		return []types.Action{types.GoToPageAction{Page: domain.PageListings}}, true
	case key.Matches(msg, k.Dashboard):
		return []types.Action{types.GoToPageAction{Page: domain.PageDashboard}}, true
	case key.Matches(msg, k.Logout):
		return []types.Action{types.LogoutAction{}}, true
	case key.Matches(msg, k.Assistant):
		return []types.Action{types.ToggleAssistantAction{}}, true
	case key.Matches(msg, k.NextTip) && ctx.AssistantOpen():
		return []types.Action{types.NextTipAction{}}, true
	}

	return nil, false
}

func (m *NormalMode) authKey(msg tea.KeyMsg) []types.Action {
	k := m.keys
	switch {
	case key.Matches(msg, k.Seeker):
		return []types.Action{types.ChooseRoleAction{Role: domain.RoleJobSeeker}}
	case key.Matches(msg, k.Employer):
		return []types.Action{types.ChooseRoleAction{Role: domain.RoleEmployer}}
	case key.Matches(msg, k.Select):
		return []types.Action{types.LoginAction{}}
	case key.Matches(msg, k.Back):
		return []types.Action{types.BackAction{}}
	}
	return nil
}

func (m *NormalMode) listingsKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return navigate("up")
	case key.Matches(msg, k.Down):
		return navigate("down")
	case key.Matches(msg, k.PageUp):
		return navigate("pageup")
	case key.Matches(msg, k.PageDown):
		return navigate("pagedown")
	case key.Matches(msg, k.Home):
		return navigate("home")
	case key.Matches(msg, k.End):
		return navigate("end")
	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}
	case key.Matches(msg, k.Location):
		return []types.Action{types.CycleFilterAction{Field: "location"}}
	case key.Matches(msg, k.JobType):
		return []types.Action{types.CycleFilterAction{Field: "type"}}
	case key.Matches(msg, k.Experience):
		return []types.Action{types.CycleFilterAction{Field: "experience"}}
	case key.Matches(msg, k.ClearFilter):
		return []types.Action{types.ClearFilterAction{}}
	case key.Matches(msg, k.Sort):
		return []types.Action{types.CycleSortAction{}}
	}

	if ctx.ListingCount() == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, k.Save):
		return []types.Action{types.ToggleSaveAction{}}
	case key.Matches(msg, k.Select):
		return []types.Action{types.OpenJobAction{}}
	}
	return nil
}

func (m *NormalMode) detailsKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	k := m.keys
	if key.Matches(msg, k.Back) {
		return []types.Action{types.BackAction{}}
	}
	if !ctx.HasSelectedJob() {
		return nil
	}
	switch {
	case key.Matches(msg, k.Save):
		return []types.Action{types.ToggleSaveAction{}}
	case key.Matches(msg, k.Apply):
		return []types.Action{types.ApplyAction{}}
	case key.Matches(msg, k.Describe):
		return []types.Action{types.ViewDescriptionAction{}}
	}
	return nil
}

func (m *NormalMode) dashboardKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if actions := m.tabKey(msg); actions != nil {
		return actions
	}
	if key.Matches(msg, m.keys.EditSummary) && ctx.LoggedIn() && ctx.DashboardTab() == domain.TabProfile {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSummary, Data: ctx.ProfileSummary()}}
	}
	return nil
}

func (m *NormalMode) tabKey(msg tea.KeyMsg) []types.Action {
	switch {
	case key.Matches(msg, m.keys.PrevTab):
		return []types.Action{types.CycleTabAction{Delta: -1}}
	case key.Matches(msg, m.keys.NextTab):
		return []types.Action{types.CycleTabAction{Delta: 1}}
	}
	return nil
}

func (m *NormalMode) railKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if ctx.RailCount() == 0 {
		return nil
	}
	k := m.keys
	switch {
	case key.Matches(msg, k.FocusRail):
		return []types.Action{types.FocusNextRailAction{}}
	case key.Matches(msg, k.Previous):
		return []types.Action{types.RailPreviousAction{}}
	case key.Matches(msg, k.Next):
		return []types.Action{types.RailNextAction{}}
	case key.Matches(msg, k.Jump):
		// Dots are numbered from 1 on screen
		return []types.Action{types.RailJumpAction{Index: int(msg.String()[0] - '1')}}
	case key.Matches(msg, k.Autoplay):
		return []types.Action{types.ToggleAutoplayAction{}}
	case key.Matches(msg, k.Select):
		return []types.Action{types.RailSelectAction{}}
	}
	return nil
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
