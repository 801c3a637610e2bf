package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderAssistant renders the open tips panel, or the hint line shown
// after a page change. It returns "" when neither is showing.
func (r *Renderer) renderAssistant(state ViewState, width int) string {
	if !state.AssistantOpen {
		if state.Hint == "" {
			return ""
		}
		return r.styles.Tip.Render("✦ "+state.Hint) + r.styles.Dim.Render("  (i for tips)")
	}

	var b strings.Builder
	b.WriteString(r.styles.Tip.Bold(true).Render("✦ Job Assistant"))
	if len(state.Tips) == 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("No tips for this page."))
		return r.styles.TipPanel.Render(b.String())
	}

	current := min(max(state.TipIndex, 0), len(state.Tips)-1)
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("  tip %d of %d", current+1, len(state.Tips))))
	b.WriteString("\n")

	inner := max(width-4, 10)
	b.WriteString(lipgloss.NewStyle().Width(inner).Render(state.Tips[current]))
	b.WriteString("\n\n")
	b.WriteString(r.styles.FilterLabel.Render("Quick Tips"))
	for i, tip := range state.Tips {
		marker := "  "
		style := r.styles.Dim
		if i == current {
			marker = "▸ "
			style = r.styles.Desc
		}
		b.WriteString("\n")
		b.WriteString(style.Render(marker + tip))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("n next tip · i close"))

	return r.styles.TipPanel.Render(b.String())
}
