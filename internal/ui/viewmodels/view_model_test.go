package viewmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/catalog"
	"jobboard/internal/config"
	"jobboard/internal/domain"
	"jobboard/internal/logic"
	"jobboard/internal/ui/assistant"
	"jobboard/internal/ui/state"
)

func newViewModel(t *testing.T, page domain.Page) (*ViewModel, *state.AppState, *logic.MemoryShortlist) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	st := state.NewAppState(page)
	shortlist := logic.NewMemoryShortlist(nil)
	return NewViewModel(st, config.DefaultConfig(), cat, shortlist), st, shortlist
}

func TestLandingCarriesCategories(t *testing.T) {
	vm, _, _ := newViewModel(t, domain.PageLanding)
	vs := vm.BuildViewState(nil, nil)
	assert.True(t, vs.ShowCategories)
	assert.Len(t, vs.Categories, 8)
	assert.Nil(t, vs.Listings)
}

func TestListingsWindowFollowsNavigator(t *testing.T) {
	vm, st, _ := newViewModel(t, domain.PageListings)
	cat, _ := catalog.Load()
	jobs := cat.Jobs()
	st.Listing.SetHeight(3)
	st.Listing.SetTotal(len(jobs))
	st.Listing.SetSelectedIndex(5)

	vs := vm.BuildViewState(nil, jobs)
	assert.Equal(t, 8, vs.TotalJobs)
	assert.Equal(t, 5, vs.Cursor)
	assert.Equal(t, 3, vs.WindowStart)
	assert.Equal(t, 6, vs.WindowEnd)
}

func TestDetailsResolvesSelectedJob(t *testing.T) {
	vm, st, shortlist := newViewModel(t, domain.PageDetails)
	st.SelectedJob = "3"
	shortlist.ToggleSave("3")

	vs := vm.BuildViewState(nil, nil)
	require.NotNil(t, vs.Job)
	assert.Equal(t, "3", vs.Job.ID)
	assert.True(t, vs.Saved["3"])

	st.SelectedJob = "missing"
	assert.Nil(t, vm.BuildViewState(nil, nil).Job)
}

func TestDashboardAndEmployer(t *testing.T) {
	vm, st, shortlist := newViewModel(t, domain.PageDashboard)
	shortlist.ToggleSave("2")
	shortlist.Apply("4")
	shortlist.Apply("1")

	vs := vm.BuildViewState(nil, nil)
	require.Len(t, vs.SavedJobs, 1)
	assert.Equal(t, "2", vs.SavedJobs[0].ID)
	require.Len(t, vs.AppliedJobs, 2)
	assert.Equal(t, "4", vs.AppliedJobs[0].ID, "application order is kept")

	st.Page = domain.PageEmployer
	st.EmployerTab = domain.EmployerApplicants
	vs = vm.BuildViewState(nil, nil)
	assert.Equal(t, domain.EmployerApplicants, vs.EmployerTab)
	assert.Equal(t, 3, vs.Stats.Postings)
	assert.Equal(t, 135, vs.Stats.Applicants)
	assert.Equal(t, 985, vs.Stats.Views)
	assert.Equal(t, 56, vs.Stats.Openings)
	assert.Len(t, vs.Postings, 3)
	assert.Len(t, vs.Applicants, 3)
}

func TestDashboardCarriesTabAndProfile(t *testing.T) {
	vm, st, _ := newViewModel(t, domain.PageDashboard)
	st.DashboardTab = domain.TabProfile
	st.Profile.Summary = "Edited"

	vs := vm.BuildViewState(nil, nil)
	assert.Equal(t, domain.TabProfile, vs.DashboardTab)
	assert.Equal(t, "Edited", vs.Profile.Summary)
}

func TestLandingCarriesSponsoredContent(t *testing.T) {
	vm, _, _ := newViewModel(t, domain.PageLanding)
	vs := vm.BuildViewState(nil, nil)
	assert.Equal(t, "Upgrade Your Career with Premium Courses", vs.Sponsored.Banner.Title)
	assert.Len(t, vs.Sponsored.Jobs, 2)
}

func TestAssistantStateReachesView(t *testing.T) {
	vm, _, _ := newViewModel(t, domain.PageListings)
	vs := vm.BuildViewState(nil, nil)
	assert.False(t, vs.AssistantOpen)
	assert.Empty(t, vs.Hint, "no assistant attached")

	cat, err := catalog.Load()
	require.NoError(t, err)
	a := assistant.New(time.Second, time.Second)
	a.SetTips(cat.Tips(domain.PageListings))
	vm.SetAssistant(a)

	vs = vm.BuildViewState(nil, nil)
	assert.Equal(t, cat.Tips(domain.PageListings)[0], vs.Hint)

	a.Toggle()
	a.Next()
	vs = vm.BuildViewState(nil, nil)
	assert.True(t, vs.AssistantOpen)
	assert.Empty(t, vs.Hint)
	assert.Equal(t, 1, vs.TipIndex)
	assert.Len(t, vs.Tips, 4)
}
