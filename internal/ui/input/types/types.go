package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"jobboard/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeSummary // editing the profile summary
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Page() domain.Page
	RailCount() int
	FocusedRail() int
	ListingCount() int
	SearchQuery() string
	HasSelectedJob() bool
	ShowingHelp() bool
	LoggedIn() bool
	DashboardTab() domain.DashboardTab
	ProfileSummary() string
	AssistantOpen() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
