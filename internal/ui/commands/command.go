package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"jobboard/internal/domain"
	"jobboard/internal/eventbus"
	"jobboard/internal/logic"
	"jobboard/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Shortlist logic.ShortlistStore
	Bus       eventbus.EventBus
}

// ToggleSaveCommand saves or unsaves a job
type ToggleSaveCommand struct {
	ctx *CommandContext
	job domain.Job
}

// NewToggleSaveCommand creates a new toggle save command
func NewToggleSaveCommand(ctx *CommandContext, job domain.Job) *ToggleSaveCommand {
	return &ToggleSaveCommand{
		ctx: ctx,
		job: job,
	}
}

// Execute flips the saved state of the job
func (c *ToggleSaveCommand) Execute() tea.Cmd {
	if c.job.ID == "" {
		return nil
	}
	if c.ctx.Shortlist.ToggleSave(c.job.ID) {
		c.ctx.State.StatusMessage = fmt.Sprintf("Saved '%s'", c.job.Title)
	} else {
		c.ctx.State.StatusMessage = fmt.Sprintf("Removed '%s' from saved jobs", c.job.Title)
	}
	return nil
}

// ApplyCommand records an application
type ApplyCommand struct {
	ctx *CommandContext
	job domain.Job
}

// NewApplyCommand creates a new apply command
func NewApplyCommand(ctx *CommandContext, job domain.Job) *ApplyCommand {
	return &ApplyCommand{
		ctx: ctx,
		job: job,
	}
}

// Execute applies once; repeated applications only report
func (c *ApplyCommand) Execute() tea.Cmd {
	if c.job.ID == "" {
		return nil
	}
	if c.ctx.Shortlist.Apply(c.job.ID) {
		c.ctx.State.StatusMessage = fmt.Sprintf("Application sent for '%s'", c.job.Title)
	} else {
		c.ctx.State.StatusMessage = fmt.Sprintf("Already applied to '%s'", c.job.Title)
	}
	return nil
}

// LoginCommand signs in with the role stub
type LoginCommand struct {
	ctx  *CommandContext
	role domain.Role
	next domain.Page
}

// NewLoginCommand creates a new login command
func NewLoginCommand(ctx *CommandContext, role domain.Role) *LoginCommand {
	return &LoginCommand{
		ctx:  ctx,
		role: role,
	}
}

// Execute signs in and records where to go next
func (c *LoginCommand) Execute() tea.Cmd {
	c.next = c.ctx.State.Login(c.role)
	c.ctx.State.StatusMessage = fmt.Sprintf("Signed in as %s", c.role.Label())
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.LoggedInEvent{Role: c.role})
	}
	return nil
}

// Next is the page to show after signing in
func (c *LoginCommand) Next() domain.Page {
	return c.next
}

// LogoutCommand ends the session. Saved and applied jobs stay for the next sign-in.
type LogoutCommand struct {
	ctx  *CommandContext
	next domain.Page
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand(ctx *CommandContext) *LogoutCommand {
	return &LogoutCommand{ctx: ctx}
}

// Execute signs out. Logging out while anonymous only reports.
func (c *LogoutCommand) Execute() tea.Cmd {
	if !c.ctx.State.LoggedIn {
		c.next = c.ctx.State.Page
		c.ctx.State.StatusMessage = "Not signed in"
		return nil
	}
	c.next = c.ctx.State.Logout()
	c.ctx.State.StatusMessage = "Signed out"
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.LoggedOutEvent{})
	}
	return nil
}

// Next is the page to show after signing out
func (c *LogoutCommand) Next() domain.Page {
	return c.next
}
