package carousel

// Viewport width thresholds. Widths below TabletMinWidth use the mobile count,
// widths from DesktopMinWidth upward use the desktop count.
const (
	TabletMinWidth  = 640
	DesktopMinWidth = 1024
)

// Breakpoint names a responsive layout class
type Breakpoint int

const (
	BreakpointMobile Breakpoint = iota
	BreakpointTablet
	BreakpointDesktop
)

func (b Breakpoint) String() string {
	switch b {
	case BreakpointMobile:
		return "mobile"
	case BreakpointTablet:
		return "tablet"
	case BreakpointDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// BreakpointFor classifies a viewport width
func BreakpointFor(width int) Breakpoint {
	switch {
	case width < TabletMinWidth:
		return BreakpointMobile
	case width < DesktopMinWidth:
		return BreakpointTablet
	default:
		return BreakpointDesktop
	}
}

// SlidesToShow maps each breakpoint to the number of items visible at once
type SlidesToShow struct {
	Mobile  int
	Tablet  int
	Desktop int
}

// DefaultSlidesToShow returns the stock {1, 2, 4} layout
func DefaultSlidesToShow() SlidesToShow {
	return SlidesToShow{Mobile: 1, Tablet: 2, Desktop: 4}
}

// Normalize raises every count to at least 1
func (s SlidesToShow) Normalize() SlidesToShow {
	return SlidesToShow{
		Mobile:  atLeastOne(s.Mobile),
		Tablet:  atLeastOne(s.Tablet),
		Desktop: atLeastOne(s.Desktop),
	}
}

// For returns the count configured for a breakpoint
func (s SlidesToShow) For(b Breakpoint) int {
	switch b {
	case BreakpointMobile:
		return s.Mobile
	case BreakpointTablet:
		return s.Tablet
	default:
		return s.Desktop
	}
}

// State is the mutable part of a carousel
type State struct {
	CurrentIndex int
	ItemsPerView int
}

// Controller keeps a sliding window over a sequence of count items.
// Every operation is total: out-of-range input is clamped, never rejected, so
// 0 <= CurrentIndex <= MaxIndex holds after each call.
type Controller struct {
	slides SlidesToShow
	count  int
	width  int
	state  State
}

// NewController creates a controller for count items at the given viewport width
func NewController(count int, slides SlidesToShow, width int) *Controller {
	c := &Controller{
		slides: slides.Normalize(),
		count:  max(0, count),
		width:  width,
	}
	c.state.ItemsPerView = c.slides.For(BreakpointFor(width))
	return c
}

// State returns a copy of the current state
func (c *Controller) State() State {
	return c.state
}

// CurrentIndex returns the first visible item index
func (c *Controller) CurrentIndex() int {
	return c.state.CurrentIndex
}

// ItemsPerView returns how many items are visible at once
func (c *Controller) ItemsPerView() int {
	return c.state.ItemsPerView
}

// Count returns the number of items in the sequence
func (c *Controller) Count() int {
	return c.count
}

// Width returns the last viewport width seen
func (c *Controller) Width() int {
	return c.width
}

// Breakpoint returns the breakpoint of the last viewport width seen
func (c *Controller) Breakpoint() Breakpoint {
	return BreakpointFor(c.width)
}

// MaxIndex is the largest valid starting index for the window
func (c *Controller) MaxIndex() int {
	return max(0, c.count-c.state.ItemsPerView)
}

// IndicatorCount is the number of position dots
func (c *Controller) IndicatorCount() int {
	return c.MaxIndex() + 1
}

// ShowControls reports whether the content overflows the viewport. Arrows
// and indicators are only drawn when it does.
func (c *Controller) ShowControls() bool {
	return c.MaxIndex() > 0
}

// CanGoPrevious reports whether the previous arrow is enabled
func (c *Controller) CanGoPrevious() bool {
	return c.state.CurrentIndex > 0
}

// CanGoNext reports whether the next arrow is enabled
func (c *Controller) CanGoNext() bool {
	return c.state.CurrentIndex < c.MaxIndex()
}

// OffsetPercent is the strip translation as a percentage of the viewport
func (c *Controller) OffsetPercent() float64 {
	return float64(c.state.CurrentIndex) * 100 / float64(c.state.ItemsPerView)
}

// ItemWidthPercent is the share of the viewport each item occupies
func (c *Controller) ItemWidthPercent() float64 {
	return 100 / float64(c.state.ItemsPerView)
}

// VisibleRange returns the half-open range of visible item indices
func (c *Controller) VisibleRange() (start, end int) {
	start = c.state.CurrentIndex
	end = min(c.count, start+c.state.ItemsPerView)
	if start > end {
		start = end
	}
	return start, end
}

// SetViewportWidth recomputes items-per-view from width and clamps the index
func (c *Controller) SetViewportWidth(width int) {
	c.width = width
	c.state.ItemsPerView = c.slides.For(BreakpointFor(width))
	c.clamp()
}

// SetSlidesToShow replaces the breakpoint counts
func (c *Controller) SetSlidesToShow(slides SlidesToShow) {
	c.slides = slides.Normalize()
	c.SetViewportWidth(c.width)
}

// SetItemCount replaces the sequence length
func (c *Controller) SetItemCount(count int) {
	c.count = max(0, count)
	c.clamp()
}

// GoToPrevious moves the window one item left, stopping at 0
func (c *Controller) GoToPrevious() {
	c.state.CurrentIndex = max(0, c.state.CurrentIndex-1)
}

// GoToNext moves the window one item right, stopping at MaxIndex
func (c *Controller) GoToNext() {
	c.state.CurrentIndex = min(c.MaxIndex(), c.state.CurrentIndex+1)
}

// GoToSlide jumps to index, clamped into [0, MaxIndex]
func (c *Controller) GoToSlide(index int) {
	c.state.CurrentIndex = clampInt(index, 0, c.MaxIndex())
}

// Tick advances like GoToNext but wraps to 0 at the end.
// Manual navigation saturates, autoplay wraps.
func (c *Controller) Tick() {
	if c.state.CurrentIndex >= c.MaxIndex() {
		c.state.CurrentIndex = 0
		return
	}
	c.state.CurrentIndex++
}

func (c *Controller) clamp() {
	if maxIndex := c.MaxIndex(); c.state.CurrentIndex > maxIndex {
		c.state.CurrentIndex = maxIndex
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
