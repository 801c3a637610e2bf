package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"jobboard/internal/carousel"
	"jobboard/internal/domain"
	"jobboard/internal/eventbus"
	"jobboard/internal/logging"
	"jobboard/internal/ui/views"
)

// similarLimit caps the similar-jobs rail on the details page
const similarLimit = 4

// buildRails creates every page's carousels once. Pages reuse them across
// visits, so a rail keeps its position while hidden but holds no listener
// or timer.
func (m *Model) buildRails() {
	opts := m.config.CarouselOptions()
	m.rails = map[domain.Page][]*carousel.Rail{
		domain.PageLanding: {
			views.LandingFeatured:  carousel.NewRail("Featured Jobs", views.JobItems(m.catalog.Jobs()), opts),
			views.LandingCompanies: carousel.NewRail("Top Companies Hiring", views.CompanyItems(m.catalog.Companies()), opts),
		},
		domain.PageDetails: {
			views.DetailsSimilar: carousel.NewRail("Similar Jobs", nil, opts),
		},
		domain.PageDashboard: {
			views.DashboardRecommended: carousel.NewRail("Recommended for You", nil, opts),
		},
	}
}

func (m *Model) currentRails() []*carousel.Rail {
	return m.rails[m.state.Page]
}

func (m *Model) focusedRail() *carousel.Rail {
	rails := m.currentRails()
	if m.state.FocusedRail < 0 || m.state.FocusedRail >= len(rails) {
		return nil
	}
	return rails[m.state.FocusedRail]
}

// goTo switches page, remounting carousels when the page actually changes
func (m *Model) goTo(page domain.Page) tea.Cmd {
	from, changed := m.state.Navigate(page)
	if !changed {
		return nil
	}
	return m.changePage(from, page)
}

// openJob shows a job's details. Opening a job from the details page
// remounts the similar-jobs rail for the new job.
func (m *Model) openJob(id string) tea.Cmd {
	from, _ := m.state.OpenJob(id)
	return m.changePage(from, domain.PageDetails)
}

// changePage unmounts the outgoing page's rails and mounts the incoming ones
func (m *Model) changePage(from, to domain.Page) tea.Cmd {
	m.unmountRails(from)
	m.prepareRails(to)
	cmd := m.mountRails(to)
	if from != to {
		cmd = tea.Batch(cmd, m.assistant.SetTips(m.catalog.Tips(to)))
	}

	if to == domain.PageListings {
		m.refreshListings()
	}

	logging.Debug("Page changed", zap.String("from", string(from)), zap.String("to", string(to)))
	m.publish(eventbus.PageChangedEvent{From: from, To: to})
	return cmd
}

// prepareRails loads the items that depend on what the page shows
func (m *Model) prepareRails(page domain.Page) {
	switch page {
	case domain.PageDetails:
		similar := m.rails[domain.PageDetails][views.DetailsSimilar]
		similar.SetItems(views.JobItems(m.catalog.Similar(m.state.SelectedJob, similarLimit)))
		similar.JumpTo(0)
	case domain.PageDashboard:
		m.refreshRecommended()
	}
}

// refreshRecommended fills the dashboard rail with jobs the seeker has
// neither saved nor applied to
func (m *Model) refreshRecommended() {
	rails := m.rails[domain.PageDashboard]
	if len(rails) == 0 {
		return
	}
	var jobs []domain.Job
	for _, job := range m.catalog.Jobs() {
		if m.shortlist.IsSaved(job.ID) || m.shortlist.IsApplied(job.ID) {
			continue
		}
		jobs = append(jobs, job)
	}
	rails[views.DashboardRecommended].SetItems(views.JobItems(jobs))
}

func (m *Model) mountRails(page domain.Page) tea.Cmd {
	rails := m.rails[page]
	if m.state.FocusedRail >= len(rails) {
		m.state.FocusedRail = 0
	}

	cmds := make([]tea.Cmd, 0, len(rails))
	for i, r := range rails {
		r.SetFocused(i == m.state.FocusedRail)
		cmds = append(cmds, r.Mount(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m *Model) unmountRails(page domain.Page) {
	for _, r := range m.rails[page] {
		r.Unmount()
		r.SetFocused(false)
	}
}

func (m *Model) focusNextRail() {
	rails := m.currentRails()
	if len(rails) == 0 {
		return
	}
	m.state.FocusedRail = (m.state.FocusedRail + 1) % len(rails)
	for i, r := range rails {
		r.SetFocused(i == m.state.FocusedRail)
	}
}

// selectRailItem opens the focused rail's first visible item. A company
// card opens the listings searched for that company.
func (m *Model) selectRailItem() tea.Cmd {
	r := m.focusedRail()
	if r == nil {
		return nil
	}
	item, ok := r.Selected()
	if !ok {
		return nil
	}

	switch it := item.(type) {
	case views.JobItem:
		return m.openJob(it.Job.ID)
	case views.CompanyItem:
		m.state.Filter.Clear()
		m.state.Filter.Query = it.Company.Name
		m.state.Listing.Home()
		return m.goTo(domain.PageListings)
	}
	return nil
}
