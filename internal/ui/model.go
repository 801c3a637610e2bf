package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"jobboard/internal/carousel"
	"jobboard/internal/catalog"
	"jobboard/internal/config"
	"jobboard/internal/domain"
	"jobboard/internal/eventbus"
	"jobboard/internal/logging"
	corelogic "jobboard/internal/logic"
	"jobboard/internal/ui/assistant"
	"jobboard/internal/ui/commands"
	"jobboard/internal/ui/handlers"
	"jobboard/internal/ui/input"
	inputtypes "jobboard/internal/ui/input/types"
	"jobboard/internal/ui/logic"
	"jobboard/internal/ui/state"
	"jobboard/internal/ui/viewmodels"
	"jobboard/internal/ui/viewport"
	"jobboard/internal/ui/views"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 3 * time.Second

// listingChrome is the number of lines the listings page uses around its
// rows, including the tip line under the page
const listingChrome = 18

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	catalog   *catalog.Catalog
	shortlist corelogic.ShortlistStore
	state     *state.AppState // centralized state

	help         help.Model
	inPagerMode  bool   // tracks if we're currently in pager mode
	searchBackup string // query to restore when search is cancelled

	// Carousels, keyed by the page that shows them. Only the current page's
	// rails are mounted.
	watcher  *viewport.Watcher
	rails    map[domain.Page][]*carousel.Rail
	listings []domain.Job // filtered and sorted listings

	assistant *assistant.Assistant // page tips

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, cat *catalog.Catalog, shortlist corelogic.ShortlistStore) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState(domain.ParsePage(cfg.UI.StartPage))
	appState.Profile = cat.Profile()

	m := &Model{
		bus:          bus,
		config:       cfg,
		catalog:      cat,
		shortlist:    shortlist,
		state:        appState,
		help:         help.New(),
		watcher:      viewport.NewWatcher(cfg.Viewport.CellWidth),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		assistant:    assistant.New(cfg.TipInterval(), cfg.HintDuration()),
	}

	m.cmdExecutor = commands.NewExecutor(appState, shortlist, bus)
	m.eventHandler = handlers.NewEventHandler(appState, m.refreshRecommended)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, cat, shortlist)
	m.viewModel.SetHelp(m.help)
	m.viewModel.SetKeys(m.inputHandler.Keys())
	m.viewModel.SetAssistant(m.assistant)

	m.buildRails()
	m.refreshListings()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init mounts the start page's carousels and shows its first tip
func (m *Model) Init() tea.Cmd {
	m.prepareRails(m.state.Page)
	return tea.Batch(
		m.mountRails(m.state.Page),
		m.assistant.SetTips(m.catalog.Tips(m.state.Page)),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	status := m.state.StatusMessage
	cmds := []tea.Cmd{m.update(msg)}

	// Re-arm autoplay on every rail whose inputs changed during this update
	for _, r := range m.currentRails() {
		cmds = append(cmds, r.Sync())
	}
	if !m.inPagerMode {
		cmds = append(cmds, m.assistant.Sync())
	}

	if s := m.state.StatusMessage; s != "" && s != status {
		cmds = append(cmds, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{text: s}
		}))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		// ov owns the keyboard while it runs
		if m.inPagerMode {
			return nil
		}
		return m.handleKey(msg)

	case carousel.TickMsg:
		if m.assistant.Owns(msg) {
			return m.assistant.Update(msg)
		}
		for _, r := range m.currentRails() {
			if r.Owns(msg) {
				return r.Update(msg)
			}
		}
		// Ticks from rails on other pages were released on unmount
		return nil
	}

	return m.handleNonKeyboardMsg(msg)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case assistant.HintExpiredMsg:
		return m.assistant.Update(msg)

	case pauseRenderingMsg:
		m.inPagerMode = true
		m.unmountRails(m.state.Page)
		m.assistant.Release()
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m.mountRails(m.state.Page)

	case pagerMsg:
		if msg.err != nil {
			logging.Warn("Pager failed, falling back to popup", zap.Error(msg.err))
			m.showPopup(msg.kind, msg.content)
		}
		return nil

	case clearStatusMsg:
		if m.state.StatusMessage == msg.text {
			m.state.StatusMessage = ""
		}
		return nil

	case quitMsg:
		return tea.Quit
	}

	// Cursor blink and other text input messages
	return m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	before := m.inputHandler.CurrentMode()

	ctx := &input.ModelContext{
		State:     m.state,
		Rails:     len(m.currentRails()),
		Listings:  len(m.listings),
		JobKnown:  m.selectedJobKnown(),
		Assistant: m.assistant.Open(),
	}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	if before != inputtypes.ModeSearch && m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		m.searchBackup = m.state.Filter.Query
	}

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.state.SetSize(width, height)
	m.help.Width = width
	m.viewModel.SetHelp(m.help)
	m.state.Listing.SetHeight(max(height-listingChrome, 3))

	// Delivered synchronously to every mounted rail
	m.watcher.Resize(width)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetInput(m.inputHandler.Prompt(), ti.View())
	} else {
		m.viewModel.SetInput("", "")
	}

	return m.renderer.Render(m.viewModel.BuildViewState(m.currentRails(), m.listings))
}

// refreshListings reapplies the filter and sort to the catalogue
func (m *Model) refreshListings() {
	jobs := m.state.Filter.Apply(m.catalog.Jobs())
	logic.SortJobs(jobs, m.state.SortMode)
	m.listings = jobs
	m.state.Listing.SetTotal(len(jobs))
}

// cursorJob returns the job under the listings cursor
func (m *Model) cursorJob() (domain.Job, bool) {
	i := m.state.Listing.SelectedIndex()
	if i < 0 || i >= len(m.listings) {
		return domain.Job{}, false
	}
	return m.listings[i], true
}

func (m *Model) selectedJobKnown() bool {
	if m.state.Page != domain.PageDetails {
		return false
	}
	_, ok := m.catalog.Job(m.state.SelectedJob)
	return ok
}

// targetJob is the job save and apply act on for the current page
func (m *Model) targetJob() (domain.Job, bool) {
	switch m.state.Page {
	case domain.PageListings:
		return m.cursorJob()
	case domain.PageDetails:
		return m.catalog.Job(m.state.SelectedJob)
	}
	return domain.Job{}, false
}

func (m *Model) showPopup(kind pagerKind, content string) {
	m.state.HelpScrollOffset = 0
	switch kind {
	case pagerHelp:
		m.state.ShowHelp = true
	default:
		m.state.ShowInfo = true
		m.state.InfoContent = content
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
