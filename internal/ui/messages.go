package ui

import (
	"jobboard/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerKind says what a pager session was showing, so a failed pager can
// fall back to the matching popup
type pagerKind int

const (
	pagerHelp pagerKind = iota
	pagerDescription
)

// pagerMsg contains the result of a pager session
type pagerMsg struct {
	kind    pagerKind
	content string
	err     error
}

// clearStatusMsg clears the status line if it still shows text
type clearStatusMsg struct {
	text string
}

// quitMsg signals that the application should quit
type quitMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
