package carousel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultAutoplaySpeed is the interval between autoplay advances
const DefaultAutoplaySpeed = 3 * time.Second

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is delivered when an autoplay interval elapses
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

type autoplayDeps struct {
	enabled bool
	speed   time.Duration
	count   int
	perView int
}

// Autoplay owns a single repeating timer registration for one carousel.
//
// Bubble Tea commands cannot be cancelled once issued, so a registration is
// identified by (id, tag). Bumping the tag cancels the live registration:
// ticks carrying an older tag are dropped by Accept.
type Autoplay struct {
	id    int
	tag   int
	armed bool
	deps  autoplayDeps
}

// NewAutoplay creates an unarmed autoplay lease
func NewAutoplay() *Autoplay {
	return &Autoplay{id: nextID()}
}

// ID identifies this lease in TickMsg
func (a *Autoplay) ID() int {
	return a.id
}

// Armed reports whether a timer registration is live
func (a *Autoplay) Armed() bool {
	return a.armed
}

// Sync cancels and re-registers the timer if any dependency differs from the
// live registration. It returns nil when nothing changed or autoplay is off.
func (a *Autoplay) Sync(enabled bool, speed time.Duration, count, perView int) tea.Cmd {
	deps := autoplayDeps{enabled: enabled, speed: speed, count: count, perView: perView}
	wantArmed := enabled && speed > 0
	if deps == a.deps && a.armed == wantArmed {
		return nil
	}

	a.tag++
	a.deps = deps
	a.armed = wantArmed
	if !a.armed {
		return nil
	}
	return a.schedule()
}

// Release cancels the live registration. The next Sync re-arms from scratch.
func (a *Autoplay) Release() {
	a.tag++
	a.armed = false
	a.deps = autoplayDeps{}
}

// Accept reports whether msg belongs to the live registration. For an
// accepted tick the returned command schedules the next one.
func (a *Autoplay) Accept(msg TickMsg) (bool, tea.Cmd) {
	if !a.armed || msg.ID != a.id || msg.tag != a.tag {
		return false, nil
	}
	return true, a.schedule()
}

func (a *Autoplay) schedule() tea.Cmd {
	id, tag := a.id, a.tag
	return tea.Tick(a.deps.speed, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
