package logic

import "jobboard/internal/domain"

// JobSource provides read access to the job catalogue
type JobSource interface {
	Jobs() []domain.Job
	Job(id string) (domain.Job, bool)
	JobsByID(ids []string) []domain.Job
}

// Publisher is the subset of the event bus the stores need
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// ShortlistStore tracks the jobs a seeker saved or applied to
type ShortlistStore interface {
	ToggleSave(id string) bool
	Apply(id string) bool
	IsSaved(id string) bool
	IsApplied(id string) bool
	Saved() []string
	Applied() []string
	Clear()
}
