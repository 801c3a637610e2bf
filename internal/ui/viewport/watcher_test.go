package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/carousel"
)

var _ carousel.WidthSource = (*Watcher)(nil)

func TestSubscribeDeliversCurrentWidth(t *testing.T) {
	w := NewWatcher(0)
	w.Resize(100)

	var got []int
	release := w.Subscribe(func(width int) { got = append(got, width) })
	defer release()

	assert.Equal(t, []int{800}, got)
}

func TestResizeNotifiesUntilReleased(t *testing.T) {
	w := NewWatcher(10)
	var got []int
	release := w.Subscribe(func(width int) { got = append(got, width) })

	w.Resize(50)
	w.Resize(120)
	require.Equal(t, []int{0, 500, 1200}, got)
	assert.Equal(t, 1, w.Subscribers())

	release()
	release()
	w.Resize(10)
	assert.Equal(t, []int{0, 500, 1200}, got)
	assert.Equal(t, 0, w.Subscribers())
	assert.Equal(t, 100, w.Width())
}

func TestListenerMayReleaseDuringNotification(t *testing.T) {
	w := NewWatcher(1)
	var release func()
	calls := 0
	release = w.Subscribe(func(width int) {
		calls++
		if width > 0 {
			release()
		}
	})

	w.SetWidth(5)
	w.SetWidth(6)
	assert.Equal(t, 2, calls)
}

func TestWatcherDrivesCarouselBreakpoints(t *testing.T) {
	w := NewWatcher(DefaultCellWidth)
	c := carousel.NewController(10, carousel.DefaultSlidesToShow(), carousel.DesktopMinWidth)
	release := w.Subscribe(c.SetViewportWidth)
	defer release()

	w.Resize(60)
	assert.Equal(t, 1, c.ItemsPerView())
	w.Resize(80)
	assert.Equal(t, 2, c.ItemsPerView())
	w.Resize(128)
	assert.Equal(t, 4, c.ItemsPerView())
}
