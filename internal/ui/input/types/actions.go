package types

import "jobboard/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type GoToPageAction struct {
	Page domain.Page
}

func (a GoToPageAction) Type() string { return "goto_page" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// OpenJobAction opens the job under the listings cursor
type OpenJobAction struct{}

func (a OpenJobAction) Type() string { return "open_job" }

// Carousel actions, applied to the focused rail
type RailPreviousAction struct{}

func (a RailPreviousAction) Type() string { return "rail_previous" }

type RailNextAction struct{}

func (a RailNextAction) Type() string { return "rail_next" }

type RailJumpAction struct {
	Index int
}

func (a RailJumpAction) Type() string { return "rail_jump" }

type RailSelectAction struct{}

func (a RailSelectAction) Type() string { return "rail_select" }

type ToggleAutoplayAction struct{}

func (a ToggleAutoplayAction) Type() string { return "toggle_autoplay" }

type FocusNextRailAction struct{}

func (a FocusNextRailAction) Type() string { return "focus_next_rail" }

// Job actions
type ToggleSaveAction struct{}

func (a ToggleSaveAction) Type() string { return "toggle_save" }

type ApplyAction struct{}

func (a ApplyAction) Type() string { return "apply" }

type ViewDescriptionAction struct{}

func (a ViewDescriptionAction) Type() string { return "view_description" }

// Listing filter actions
type CycleFilterAction struct {
	Field string // "location", "type", "experience"
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

// Dashboard actions
type CycleTabAction struct {
	Delta int
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

// Assistant actions
type ToggleAssistantAction struct{}

func (a ToggleAssistantAction) Type() string { return "toggle_assistant" }

type NextTipAction struct{}

func (a NextTipAction) Type() string { return "next_tip" }

// Session actions
type ChooseRoleAction struct {
	Role domain.Role
}

func (a ChooseRoleAction) Type() string { return "choose_role" }

type LoginAction struct{}

func (a LoginAction) Type() string { return "login" }

type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode // Which mode is editing the text
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode // Which mode was cancelled
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Misc actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
