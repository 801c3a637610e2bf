package views

import (
	"fmt"

	"jobboard/internal/carousel"
	"jobboard/internal/domain"
)

// JobItem shows a job as a carousel card
type JobItem struct {
	Job   domain.Job
	lines []string
}

func NewJobItem(job domain.Job) JobItem {
	return JobItem{
		Job: job,
		lines: []string{
			job.Company,
			job.Location,
			job.Type + " · " + job.Experience,
			job.Salary,
		},
	}
}

func (i JobItem) Key() string     { return "job:" + i.Job.ID }
func (i JobItem) Title() string   { return i.Job.Title }
func (i JobItem) Lines() []string { return i.lines }

// CompanyItem shows a hiring company as a carousel card
type CompanyItem struct {
	Company domain.Company
}

func (i CompanyItem) Key() string   { return "company:" + i.Company.Name }
func (i CompanyItem) Title() string { return i.Company.Name }
func (i CompanyItem) Lines() []string {
	return []string{i.Company.Industry, fmt.Sprintf("%d open positions", i.Company.Openings)}
}

// JobItems wraps jobs for a rail
func JobItems(jobs []domain.Job) []carousel.Item {
	items := make([]carousel.Item, len(jobs))
	for i, job := range jobs {
		items[i] = NewJobItem(job)
	}
	return items
}

// CompanyItems wraps companies for a rail
func CompanyItems(companies []domain.Company) []carousel.Item {
	items := make([]carousel.Item, len(companies))
	for i, c := range companies {
		items[i] = CompanyItem{Company: c}
	}
	return items
}
