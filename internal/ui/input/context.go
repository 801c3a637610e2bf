package input

import (
	"jobboard/internal/domain"
	"jobboard/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Rails     int // rails mounted on the current page
	Listings  int // rows after filtering
	JobKnown  bool
	Assistant bool // tips panel open
}

func (c *ModelContext) Page() domain.Page {
	return c.State.Page
}

func (c *ModelContext) RailCount() int {
	return c.Rails
}

func (c *ModelContext) FocusedRail() int {
	return c.State.FocusedRail
}

func (c *ModelContext) ListingCount() int {
	return c.Listings
}

func (c *ModelContext) SearchQuery() string {
	return c.State.Filter.Query
}

// HasSelectedJob reports whether the details page has a job to act on
func (c *ModelContext) HasSelectedJob() bool {
	return c.JobKnown
}

// ShowingHelp reports whether an overlay popup has the keyboard
func (c *ModelContext) ShowingHelp() bool {
	return c.State.ShowHelp || c.State.ShowInfo
}

func (c *ModelContext) LoggedIn() bool {
	return c.State.LoggedIn
}

func (c *ModelContext) DashboardTab() domain.DashboardTab {
	return c.State.DashboardTab
}

func (c *ModelContext) ProfileSummary() string {
	return c.State.Profile.Summary
}

func (c *ModelContext) AssistantOpen() bool {
	return c.Assistant
}
