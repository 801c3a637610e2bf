package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"jobboard/internal/ui/input/types"
)

// SummaryMode edits the profile summary. The text is only applied on enter.
type SummaryMode struct {
	TextInputMode
}

func NewSummaryMode(ti *textinput.Model) *SummaryMode {
	return &SummaryMode{
		TextInputMode: NewTextInputMode(types.ModeSummary, "summary", "Summary: ", ti),
	}
}
