package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
	"jobboard/internal/eventbus"
	"jobboard/internal/logic"
	"jobboard/internal/ui/state"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
func (b *recordingBus) Close() {}

func newExecutor() (*Executor, *state.AppState, *logic.MemoryShortlist, *recordingBus) {
	bus := &recordingBus{}
	st := state.NewAppState(domain.PageListings)
	shortlist := logic.NewMemoryShortlist(nil)
	return NewExecutor(st, shortlist, bus), st, shortlist, bus
}

func TestToggleSaveReportsBothDirections(t *testing.T) {
	e, st, shortlist, _ := newExecutor()
	job := domain.Job{ID: "1", Title: "Frontend Developer"}

	e.ExecuteToggleSave(job)
	assert.True(t, shortlist.IsSaved("1"))
	assert.Equal(t, "Saved 'Frontend Developer'", st.StatusMessage)

	e.ExecuteToggleSave(job)
	assert.False(t, shortlist.IsSaved("1"))
	assert.Contains(t, st.StatusMessage, "Removed")
}

func TestApplyOnlyOnce(t *testing.T) {
	e, st, shortlist, _ := newExecutor()
	job := domain.Job{ID: "2", Title: "Backend Developer"}

	e.ExecuteApply(job)
	assert.Contains(t, st.StatusMessage, "Application sent")
	e.ExecuteApply(job)
	assert.Contains(t, st.StatusMessage, "Already applied")
	assert.Equal(t, []string{"2"}, shortlist.Applied())
}

func TestEmptyJobIsIgnored(t *testing.T) {
	e, st, shortlist, _ := newExecutor()
	e.ExecuteToggleSave(domain.Job{})
	e.ExecuteApply(domain.Job{})
	assert.Empty(t, shortlist.Saved())
	assert.Empty(t, shortlist.Applied())
	assert.Empty(t, st.StatusMessage)
}

func TestLoginAndLogout(t *testing.T) {
	e, st, shortlist, bus := newExecutor()

	next := e.ExecuteLogin(domain.RoleEmployer)
	assert.Equal(t, domain.PageEmployer, next)
	assert.True(t, st.LoggedIn)

	shortlist.ToggleSave("3")
	next = e.ExecuteLogout()
	assert.Equal(t, domain.PageLanding, next)
	assert.False(t, st.LoggedIn)
	assert.Equal(t, []string{"3"}, shortlist.Saved(), "logout keeps the shortlist")

	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.LoggedInEvent{Role: domain.RoleEmployer}, bus.events[0])
	assert.Equal(t, eventbus.LoggedOutEvent{}, bus.events[1])
}

func TestLogoutWhileAnonymousStays(t *testing.T) {
	e, st, _, bus := newExecutor()
	assert.Equal(t, domain.PageListings, e.ExecuteLogout())
	assert.Equal(t, "Not signed in", st.StatusMessage)
	assert.Empty(t, bus.events)
}
