package carousel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minCardWidth = 8
	arrowWidth   = 2
)

// RailStyles holds the lipgloss styles used to draw a rail
type RailStyles struct {
	Title         lipgloss.Style
	FocusedTitle  lipgloss.Style
	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	CardBody      lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	Dot           lipgloss.Style
	DotActive     lipgloss.Style
	Paused        lipgloss.Style
	Empty         lipgloss.Style
}

// DefaultRailStyles returns the stock rail styles
func DefaultRailStyles() RailStyles {
	return RailStyles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		FocusedTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Card:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")).Padding(0, 1),
		CardTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		CardBody:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Arrow:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		ArrowDisabled: lipgloss.NewStyle().Faint(true),
		Dot:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Paused:        lipgloss.NewStyle().Faint(true).Italic(true),
		Empty:         lipgloss.NewStyle().Faint(true),
	}
}

// SetStyles replaces the rail styles
func (r *Rail) SetStyles(styles RailStyles) {
	r.styles = styles
}

// View renders the rail into width columns
func (r *Rail) View(width int) string {
	var b strings.Builder

	b.WriteString(r.renderTitle())
	b.WriteString("\n")

	if len(r.items) == 0 {
		b.WriteString(r.styles.Empty.Render("Nothing to show"))
		return b.String()
	}

	showControls := r.ctrl.ShowControls()
	stripWidth := width
	if showControls {
		stripWidth -= 2 * arrowWidth
	}

	// Each card gets ItemWidthPercent of the strip.
	cardWidth := int(float64(stripWidth) * r.ctrl.ItemWidthPercent() / 100)
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	cards := make([]string, 0, r.ctrl.ItemsPerView())
	for _, item := range r.Visible() {
		cards = append(cards, r.renderCard(item, cardWidth))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	if showControls {
		prev := r.renderArrow("‹", r.ctrl.CanGoPrevious())
		next := r.renderArrow("›", r.ctrl.CanGoNext())
		strip = lipgloss.JoinHorizontal(lipgloss.Center, prev, strip, next)
	}
	b.WriteString(strip)

	if showControls {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderDots()))
	}

	return b.String()
}

func (r *Rail) renderTitle() string {
	title := r.styles.Title.Render(r.title)
	if r.focused {
		title = r.styles.FocusedTitle.Render("▸ " + r.title)
	}
	if r.mounted && !r.opts.Autoplay {
		title += " " + r.styles.Paused.Render("(paused)")
	}
	return title
}

func (r *Rail) renderCard(item Item, outerWidth int) string {
	// Border takes one column on each side.
	inner := outerWidth - 2
	lines := []string{r.styles.CardTitle.Render(item.Title())}
	for _, line := range item.Lines() {
		lines = append(lines, r.styles.CardBody.Render(line))
	}
	return r.styles.Card.Width(inner).Render(strings.Join(lines, "\n"))
}

func (r *Rail) renderArrow(glyph string, enabled bool) string {
	style := r.styles.ArrowDisabled
	if enabled {
		style = r.styles.Arrow
	}
	return lipgloss.PlaceHorizontal(arrowWidth, lipgloss.Center, style.Render(glyph))
}

func (r *Rail) renderDots() string {
	dots := make([]string, r.ctrl.IndicatorCount())
	current := r.ctrl.CurrentIndex()
	for i := range dots {
		if i == current {
			dots[i] = r.styles.DotActive.Render("●")
		} else {
			dots[i] = r.styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
