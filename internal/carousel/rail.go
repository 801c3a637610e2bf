package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Item is a card shown in a rail
type Item interface {
	Key() string
	Title() string
	Lines() []string
}

// WidthSource notifies subscribers of viewport width changes. Subscribe
// delivers the current width immediately and returns a release func that
// deregisters the subscriber.
type WidthSource interface {
	Subscribe(fn func(width int)) (release func())
}

// Options configures a rail
type Options struct {
	SlidesToShow  SlidesToShow
	Autoplay      bool
	AutoplaySpeed time.Duration
}

// DefaultOptions returns {1,2,4} slides with autoplay every 3s
func DefaultOptions() Options {
	return Options{
		SlidesToShow:  DefaultSlidesToShow(),
		Autoplay:      true,
		AutoplaySpeed: DefaultAutoplaySpeed,
	}
}

// Rail is a horizontally scrolling row of items driven by a Controller.
//
// A rail is inert until Mount: it holds no width subscription and no live
// autoplay timer. Unmount releases both.
type Rail struct {
	title    string
	items    []Item
	opts     Options
	ctrl     *Controller
	autoplay *Autoplay
	release  func()
	mounted  bool
	focused  bool
	styles   RailStyles
}

// NewRail creates an unmounted rail
func NewRail(title string, items []Item, opts Options) *Rail {
	if opts.AutoplaySpeed <= 0 {
		opts.AutoplaySpeed = DefaultAutoplaySpeed
	}
	opts.SlidesToShow = opts.SlidesToShow.Normalize()

	return &Rail{
		title:    title,
		items:    items,
		opts:     opts,
		ctrl:     NewController(len(items), opts.SlidesToShow, DesktopMinWidth),
		autoplay: NewAutoplay(),
		styles:   DefaultRailStyles(),
	}
}

// Mount subscribes to width changes and starts autoplay
func (r *Rail) Mount(src WidthSource) tea.Cmd {
	if r.mounted {
		return r.Sync()
	}
	r.mounted = true
	if src != nil {
		r.release = src.Subscribe(r.ctrl.SetViewportWidth)
	}
	return r.Sync()
}

// Unmount releases the width subscription and cancels autoplay
func (r *Rail) Unmount() {
	if r.release != nil {
		r.release()
		r.release = nil
	}
	r.mounted = false
	r.autoplay.Release()
}

// Mounted reports whether the rail is live
func (r *Rail) Mounted() bool {
	return r.mounted
}

// Sync re-registers autoplay when its inputs changed since the last call
func (r *Rail) Sync() tea.Cmd {
	if !r.mounted {
		return nil
	}
	return r.autoplay.Sync(r.opts.Autoplay, r.opts.AutoplaySpeed, r.ctrl.Count(), r.ctrl.ItemsPerView())
}

// Update handles this rail's autoplay ticks
func (r *Rail) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || !r.mounted {
		return nil
	}
	accepted, cmd := r.autoplay.Accept(tick)
	if !accepted {
		return nil
	}
	r.ctrl.Tick()
	return cmd
}

// Owns reports whether a tick message was issued by this rail
func (r *Rail) Owns(msg TickMsg) bool {
	return msg.ID == r.autoplay.ID()
}

// Previous moves the window left
func (r *Rail) Previous() {
	r.ctrl.GoToPrevious()
}

// Next moves the window right
func (r *Rail) Next() {
	r.ctrl.GoToNext()
}

// JumpTo moves the window to an indicator position
func (r *Rail) JumpTo(index int) {
	r.ctrl.GoToSlide(index)
}

// ToggleAutoplay flips autoplay. The timer follows on the next Sync.
func (r *Rail) ToggleAutoplay() bool {
	r.opts.Autoplay = !r.opts.Autoplay
	return r.opts.Autoplay
}

// AutoplayEnabled reports the autoplay flag
func (r *Rail) AutoplayEnabled() bool {
	return r.opts.Autoplay
}

// SetAutoplaySpeed changes the autoplay interval
func (r *Rail) SetAutoplaySpeed(speed time.Duration) {
	if speed > 0 {
		r.opts.AutoplaySpeed = speed
	}
}

// SetSlidesToShow changes the breakpoint counts
func (r *Rail) SetSlidesToShow(slides SlidesToShow) {
	r.opts.SlidesToShow = slides.Normalize()
	r.ctrl.SetSlidesToShow(slides)
}

// SetItems replaces the item sequence
func (r *Rail) SetItems(items []Item) {
	r.items = items
	r.ctrl.SetItemCount(len(items))
}

// Items returns the item sequence
func (r *Rail) Items() []Item {
	return r.items
}

// Selected returns the leftmost visible item
func (r *Rail) Selected() (Item, bool) {
	start, end := r.ctrl.VisibleRange()
	if start >= end {
		return nil, false
	}
	return r.items[start], true
}

// Visible returns the items currently in the window
func (r *Rail) Visible() []Item {
	start, end := r.ctrl.VisibleRange()
	return r.items[start:end]
}

// Title returns the rail heading
func (r *Rail) Title() string {
	return r.title
}

// SetFocused marks the rail as the target of navigation keys
func (r *Rail) SetFocused(focused bool) {
	r.focused = focused
}

// Focused reports whether the rail has focus
func (r *Rail) Focused() bool {
	return r.focused
}

// Controller exposes the window state for rendering and tests
func (r *Rail) Controller() *Controller {
	return r.ctrl
}
