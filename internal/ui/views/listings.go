package views

import (
	"fmt"
	"strings"

	"jobboard/internal/ui/logic"
)

func (r *Renderer) renderListings(state ViewState, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Hero.Render("Find Your Perfect Job"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("Showing %d of %d jobs", len(state.Listings), state.TotalJobs)))
	b.WriteString("\n\n")

	// The filter bar is always drawn so the layout does not jump when the
	// search box opens
	b.WriteString(r.renderFilterBar(state))
	b.WriteString("\n\n")

	if len(state.Listings) == 0 {
		b.WriteString(r.styles.Dim.Render("No jobs found. Try adjusting your filters (c clears them)."))
		return b.String()
	}

	start, end := state.WindowStart, state.WindowEnd
	if end <= start || end > len(state.Listings) {
		start, end = 0, len(state.Listings)
	}

	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
		b.WriteString("\n")
	}
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		job := state.Listings[i]
		rows = append(rows, r.jobRender.RenderJob(job, i == state.Cursor,
			state.Saved[job.ID], state.Applied[job.ID], state.Filter.Query))
	}
	b.WriteString(strings.Join(rows, "\n"))
	if end < len(state.Listings) {
		b.WriteString("\n")
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(state.Listings)-end)))
	}

	return b.String()
}

func (r *Renderer) renderFilterBar(state ViewState) string {
	search := state.Filter.Query
	if state.InputPrompt != "" {
		search = state.TextInput
	}
	if search == "" {
		search = r.styles.Dim.Render("press / to search")
	} else {
		search = r.styles.Filter.Render(search)
	}

	field := func(label, value string) string {
		return r.styles.FilterLabel.Render(label+": ") + r.styles.Filter.Render(logic.Describe(value))
	}

	return strings.Join([]string{
		r.styles.FilterLabel.Render("Search: ") + search,
		field("Location (L)", state.Filter.Location),
		field("Type (T)", state.Filter.Type),
		field("Experience (E)", state.Filter.Experience),
		r.styles.FilterLabel.Render("Sort (S): ") + r.styles.Filter.Render(state.SortMode.String()),
	}, "  ")
}
