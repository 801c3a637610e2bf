package logic

// Navigator keeps a list cursor and the scroll window that shows it
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a navigator showing height rows at a time
func NewNavigator(height int) *Navigator {
	n := &Navigator{}
	n.SetHeight(height)
	return n
}

// SelectedIndex returns the cursor position
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// Height returns the number of visible rows
func (n *Navigator) Height() int {
	return n.viewportHeight
}

// Total returns the number of rows
func (n *Navigator) Total() int {
	return n.total
}

// SetTotal updates the row count and clamps the cursor
func (n *Navigator) SetTotal(total int) {
	n.total = max(total, 0)
	n.SetSelectedIndex(n.selectedIndex)
}

// SetHeight updates the visible row count
func (n *Navigator) SetHeight(height int) {
	n.viewportHeight = max(height, 1)
	n.ensureSelectedVisible()
}

// SetSelectedIndex moves the cursor and scrolls to keep it visible
func (n *Navigator) SetSelectedIndex(index int) {
	n.selectedIndex = min(max(index, 0), max(n.total-1, 0))
	n.ensureSelectedVisible()
}

func (n *Navigator) MoveUp()   { n.SetSelectedIndex(n.selectedIndex - 1) }
func (n *Navigator) MoveDown() { n.SetSelectedIndex(n.selectedIndex + 1) }
func (n *Navigator) PageUp()   { n.SetSelectedIndex(n.selectedIndex - n.viewportHeight) }
func (n *Navigator) PageDown() { n.SetSelectedIndex(n.selectedIndex + n.viewportHeight) }
func (n *Navigator) Home()     { n.SetSelectedIndex(0) }
func (n *Navigator) End()      { n.SetSelectedIndex(n.total - 1) }

// Window returns the half-open range of visible rows
func (n *Navigator) Window() (start, end int) {
	return n.viewportOffset, min(n.viewportOffset+n.viewportHeight, n.total)
}

func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Keep the window full near the bottom
	maxOffset := max(n.total-n.viewportHeight, 0)
	n.viewportOffset = min(max(n.viewportOffset, 0), maxOffset)
}
