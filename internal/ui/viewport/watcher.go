package viewport

import (
	"sync"
)

// DefaultCellWidth converts terminal columns into viewport width units.
// 80 columns land on the tablet breakpoint, 128 on desktop.
const DefaultCellWidth = 8

// Watcher broadcasts viewport width changes to subscribers.
//
// Delivery is synchronous on the goroutine calling Resize, which in the app
// is the Bubble Tea update loop, so subscribers never race the UI.
type Watcher struct {
	mu        sync.RWMutex
	cellWidth int
	width     int
	nextID    int
	listeners map[int]func(int)
}

// NewWatcher creates a watcher. cellWidth <= 0 uses DefaultCellWidth.
func NewWatcher(cellWidth int) *Watcher {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return &Watcher{
		cellWidth: cellWidth,
		listeners: make(map[int]func(int)),
	}
}

// Subscribe registers fn, calls it with the current width, and returns a
// func that deregisters it. Calling the release func twice is harmless.
func (w *Watcher) Subscribe(fn func(width int)) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	width := w.width
	w.mu.Unlock()

	fn(width)

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	}
}

// Resize records a terminal width in columns and notifies subscribers
func (w *Watcher) Resize(columns int) {
	w.SetWidth(columns * w.cellWidth)
}

// SetWidth records a width in viewport units and notifies subscribers
func (w *Watcher) SetWidth(width int) {
	w.mu.Lock()
	w.width = width
	// Copy so listeners may unsubscribe while being notified.
	handlers := make([]func(int), 0, len(w.listeners))
	for _, fn := range w.listeners {
		handlers = append(handlers, fn)
	}
	w.mu.Unlock()

	for _, fn := range handlers {
		fn(width)
	}
}

// Width returns the last width in viewport units
func (w *Watcher) Width() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width
}

// Subscribers returns the number of live subscriptions
func (w *Watcher) Subscribers() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.listeners)
}
