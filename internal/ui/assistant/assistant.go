// Package assistant shows page-specific tips: a hint line for a few
// seconds after every page change, and a panel that cycles through the
// page's tips while it is open.
package assistant

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jobboard/internal/carousel"
)

// HintExpiredMsg hides the hint shown on a page change
type HintExpiredMsg struct {
	seq int
}

// Assistant holds the tips for the current page
type Assistant struct {
	tips     []string
	current  int
	open     bool
	hint     bool
	seq      int // bumped per page change so stale hint timers are ignored
	interval time.Duration
	hintFor  time.Duration
	rotation *carousel.Autoplay
}

// New creates a closed assistant. interval is the rotation speed while the
// panel is open and hintFor how long a page's first tip is shown.
func New(interval, hintFor time.Duration) *Assistant {
	return &Assistant{
		interval: interval,
		hintFor:  hintFor,
		rotation: carousel.NewAutoplay(),
	}
}

// SetTips switches to a new page's tips, rewinds to the first tip and shows
// it as a hint. The returned command hides the hint again.
func (a *Assistant) SetTips(tips []string) tea.Cmd {
	a.tips = tips
	a.current = 0
	a.seq++
	a.hint = len(tips) > 0
	if !a.hint || a.hintFor <= 0 {
		return nil
	}
	seq := a.seq
	return tea.Tick(a.hintFor, func(time.Time) tea.Msg {
		return HintExpiredMsg{seq: seq}
	})
}

// Toggle opens or closes the panel and reports whether it is now open
func (a *Assistant) Toggle() bool {
	a.open = !a.open
	if a.open {
		a.hint = false
	}
	return a.open
}

// Open reports whether the panel is showing
func (a *Assistant) Open() bool {
	return a.open
}

// Tips returns the current page's tips
func (a *Assistant) Tips() []string {
	return a.tips
}

// Current is the index of the tip on display
func (a *Assistant) Current() int {
	return a.current
}

// Tip returns the tip on display, or "" when the page has none
func (a *Assistant) Tip() string {
	if len(a.tips) == 0 {
		return ""
	}
	return a.tips[a.current]
}

// Hint returns the tip to show under the page while the panel is closed
func (a *Assistant) Hint() (string, bool) {
	if a.open || !a.hint {
		return "", false
	}
	return a.Tip(), true
}

// Next shows the following tip, wrapping at the end
func (a *Assistant) Next() {
	if len(a.tips) > 0 {
		a.current = (a.current + 1) % len(a.tips)
	}
}

// Select shows tip i. Out of range indexes are ignored.
func (a *Assistant) Select(i int) {
	if i >= 0 && i < len(a.tips) {
		a.current = i
	}
}

// Sync arms the rotation while the panel is open on a page with more than
// one tip. The timer restarts only when the panel opens or closes or the
// number of tips changes.
func (a *Assistant) Sync() tea.Cmd {
	return a.rotation.Sync(a.open && len(a.tips) > 1, a.interval, len(a.tips), 1)
}

// Release stops the rotation until the next Sync
func (a *Assistant) Release() {
	a.rotation.Release()
}

// Rotating reports whether a rotation timer is live
func (a *Assistant) Rotating() bool {
	return a.rotation.Armed()
}

// Owns reports whether msg is one of this assistant's rotation ticks
func (a *Assistant) Owns(msg carousel.TickMsg) bool {
	return msg.ID == a.rotation.ID()
}

// Update advances on rotation ticks and hides expired hints
func (a *Assistant) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case carousel.TickMsg:
		ok, cmd := a.rotation.Accept(msg)
		if !ok {
			return nil
		}
		a.Next()
		return cmd
	case HintExpiredMsg:
		if msg.seq == a.seq {
			a.hint = false
		}
	}
	return nil
}
