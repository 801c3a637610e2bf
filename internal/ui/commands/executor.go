package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"jobboard/internal/domain"
	"jobboard/internal/eventbus"
	"jobboard/internal/logic"
	"jobboard/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, shortlist logic.ShortlistStore, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:     state,
			Shortlist: shortlist,
			Bus:       bus,
		},
	}
}

// ExecuteToggleSave creates and executes a toggle save command
func (e *Executor) ExecuteToggleSave(job domain.Job) tea.Cmd {
	cmd := NewToggleSaveCommand(e.ctx, job)
	return cmd.Execute()
}

// ExecuteApply creates and executes an apply command
func (e *Executor) ExecuteApply(job domain.Job) tea.Cmd {
	cmd := NewApplyCommand(e.ctx, job)
	return cmd.Execute()
}

// ExecuteLogin signs in and returns the page to show next
func (e *Executor) ExecuteLogin(role domain.Role) domain.Page {
	cmd := NewLoginCommand(e.ctx, role)
	cmd.Execute()
	return cmd.Next()
}

// ExecuteLogout signs out and returns the page to show next
func (e *Executor) ExecuteLogout() domain.Page {
	cmd := NewLogoutCommand(e.ctx)
	cmd.Execute()
	return cmd.Next()
}
