package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the app responds to
type KeyMap struct {
	// Global
	Landing   key.Binding
	Listings  key.Binding
	Dashboard key.Binding
	Logout    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Assistant
	Assistant key.Binding
	NextTip   key.Binding

	// Carousel
	FocusRail key.Binding
	Previous  key.Binding
	Next      key.Binding
	Jump      key.Binding
	Autoplay  key.Binding
	Select    key.Binding

	// Lists
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Listings and details
	Search      key.Binding
	Location    key.Binding
	JobType     key.Binding
	Experience  key.Binding
	ClearFilter key.Binding
	Sort        key.Binding
	Save        key.Binding
	Apply       key.Binding
	Describe    key.Binding
	Back        key.Binding

	// Dashboards
	PrevTab     key.Binding
	NextTab     key.Binding
	EditSummary key.Binding

	// Auth
	Seeker   key.Binding
	Employer key.Binding
}

// Default returns the standard key bindings
func Default() KeyMap {
	return KeyMap{
		Landing:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "home")),
		Listings:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "browse jobs")),
		Dashboard: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "dashboard")),
		Logout:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Assistant: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "tips")),
		NextTip:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next tip")),

		FocusRail: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next carousel")),
		Previous:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to dot"),
		),
		Autoplay: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/play")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),

		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Location:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "location")),
		JobType:     key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "job type")),
		Experience:  key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "experience")),
		ClearFilter: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Sort:        key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort")),
		Save:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Apply:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply")),
		Describe:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view in pager")),
		Back:        key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "back")),

		PrevTab:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous tab")),
		NextTab:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
		EditSummary: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit summary")),

		Seeker:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "job seeker")),
		Employer: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "employer")),
	}
}

// ShortHelp returns keybindings to be shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusRail, k.Previous, k.Next, k.Autoplay, k.Listings, k.Assistant, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Landing, k.Listings, k.Dashboard, k.Logout, k.Help, k.Quit},
		{k.FocusRail, k.Previous, k.Next, k.Jump, k.Autoplay, k.Select},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Search, k.Location, k.JobType, k.Experience, k.ClearFilter, k.Sort},
		{k.Save, k.Apply, k.Describe, k.Back, k.Seeker, k.Employer},
		{k.PrevTab, k.NextTab, k.EditSummary, k.Assistant, k.NextTip},
	}
}

// Sections pairs each FullHelp column with a heading
func (k KeyMap) Sections() []string {
	return []string{"Pages", "Carousels", "Lists", "Listings", "Jobs & sign-in", "Dashboards & tips"}
}
