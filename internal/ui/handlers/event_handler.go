package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"jobboard/internal/eventbus"
	"jobboard/internal/logging"
	"jobboard/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state              *state.AppState
	onShortlistChanged func()
}

// NewEventHandler creates a new event handler. onShortlistChanged runs on the
// UI goroutine whenever a saved or applied set changes.
func NewEventHandler(appState *state.AppState, onShortlistChanged func()) *EventHandler {
	return &EventHandler{
		state:              appState,
		onShortlistChanged: onShortlistChanged,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.JobSavedEvent, eventbus.JobUnsavedEvent, eventbus.JobAppliedEvent:
		if h.onShortlistChanged != nil {
			h.onShortlistChanged()
		}

	case eventbus.LoggedOutEvent:
		if h.onShortlistChanged != nil {
			h.onShortlistChanged()
		}

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
		logging.Error("UI received error event", zap.String("message", e.Message), zap.Error(e.Err))

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config saved to %s", e.Path)

	case eventbus.ConfigLoadedEvent:
		logging.Debug("Config loaded", zap.String("path", e.Path))
	}

	return nil
}
