package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"jobboard/internal/carousel"
	"jobboard/internal/catalog"
	"jobboard/internal/config"
	"jobboard/internal/domain"
	"jobboard/internal/logic"
	"jobboard/internal/ui/assistant"
	"jobboard/internal/ui/input/keys"
	"jobboard/internal/ui/state"
	"jobboard/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	catalog   *catalog.Catalog
	shortlist logic.ShortlistStore
	help      help.Model
	keys      keys.KeyMap
	assistant *assistant.Assistant
	prompt    string
	inputText string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, cat *catalog.Catalog, shortlist logic.ShortlistStore) *ViewModel {
	return &ViewModel{
		state:     appState,
		config:    cfg,
		catalog:   cat,
		shortlist: shortlist,
		help:      help.New(),
		keys:      keys.Default(),
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetKeys sets the bindings listed by the footer and the help overlay
func (vm *ViewModel) SetKeys(km keys.KeyMap) {
	vm.keys = km
}

// SetAssistant sets the source of the tips panel and hint line
func (vm *ViewModel) SetAssistant(a *assistant.Assistant) {
	vm.assistant = a
}

// SetInput records the active text input, or clears it when prompt is empty
func (vm *ViewModel) SetInput(prompt, rendered string) {
	vm.prompt = prompt
	vm.inputText = rendered
}

// BuildViewState creates a ViewState for rendering. rails are the current
// page's carousels and listings the filtered, sorted jobs.
func (vm *ViewModel) BuildViewState(rails []*carousel.Rail, listings []domain.Job) views.ViewState {
	s := vm.state
	vs := views.ViewState{
		Width:            s.Width,
		Height:           s.Height,
		Page:             s.Page,
		Role:             s.Role,
		LoggedIn:         s.LoggedIn,
		PendingRole:      s.PendingRole,
		StatusMessage:    s.StatusMessage,
		InputPrompt:      vm.prompt,
		TextInput:        vm.inputText,
		Rails:            rails,
		Saved:            toSet(vm.shortlist.Saved()),
		Applied:          toSet(vm.shortlist.Applied()),
		ShowHelp:         s.ShowHelp,
		HelpScrollOffset: s.HelpScrollOffset,
		HelpModel:        vm.help,
		Keys:             vm.keys,
		ShowInfo:         s.ShowInfo,
		InfoContent:      s.InfoContent,
	}

	if a := vm.assistant; a != nil {
		vs.AssistantOpen = a.Open()
		vs.Tips = a.Tips()
		vs.TipIndex = a.Current()
		vs.Hint, _ = a.Hint()
	}

	switch s.Page {
	case domain.PageLanding:
		vs.Categories = vm.catalog.Categories()
		vs.ShowCategories = vm.config.UI.ShowCategories
		vs.Sponsored = vm.catalog.Sponsored()

	case domain.PageListings:
		vs.Listings = listings
		vs.TotalJobs = len(vm.catalog.Jobs())
		vs.Filter = s.Filter
		vs.SortMode = s.SortMode
		vs.Cursor = s.Listing.SelectedIndex()
		vs.WindowStart, vs.WindowEnd = s.Listing.Window()

	case domain.PageDetails:
		if job, ok := vm.catalog.Job(s.SelectedJob); ok {
			vs.Job = &job
		}

	case domain.PageDashboard:
		vs.DashboardTab = s.DashboardTab
		vs.SavedJobs = vm.catalog.JobsByID(vm.shortlist.Saved())
		vs.AppliedJobs = vm.catalog.JobsByID(vm.shortlist.Applied())
		vs.Profile = s.Profile

	case domain.PageEmployer:
		vs.EmployerTab = s.EmployerTab
		vs.Postings = vm.catalog.Postings()
		vs.Applicants = vm.catalog.Applicants()
		vs.Stats = employerStats(vs.Postings, vm.catalog.TotalOpenings())
	}

	return vs
}

func employerStats(postings []domain.Posting, openings int) views.EmployerStats {
	stats := views.EmployerStats{Openings: openings}
	for _, p := range postings {
		if p.Active() {
			stats.Postings++
		}
		stats.Applicants += p.Applicants
		stats.Views += p.Views
	}
	return stats
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
