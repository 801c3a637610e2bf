package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"jobboard/internal/ui/input/types"
)

// SearchMode edits the listings query. Every keystroke is reflected live
// through UpdateTextAction.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
