package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobboard/internal/ui/input/types"
)

var (
	textCancel = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	textSubmit = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply"))
	textQuit   = key.NewBinding(key.WithKeys("ctrl+c"))
)

// TextInputMode is a base for modes that accept a line of text. Keys it
// does not claim are left for the handler to feed into the text input.
type TextInputMode struct {
	mode      types.Mode
	name      string
	prompt    string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		prompt:    prompt,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Prompt is the label shown before the input
func (m TextInputMode) Prompt() string {
	return m.prompt
}

// Enter focuses the input without clearing it: it already holds the text
// being edited, such as the live query a cancel restores from the model's
// backup.
func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput == nil {
		return nil
	}
	m.textInput.Prompt = "" // rendered by the view
	m.textInput.Focus()
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, textQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, textCancel):
		return []types.Action{
			types.CancelTextAction{Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case key.Matches(msg, textSubmit):
		return []types.Action{
			types.SubmitTextAction{Text: m.value(), Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}

func (m TextInputMode) value() string {
	if m.textInput == nil {
		return ""
	}
	return m.textInput.Value()
}
