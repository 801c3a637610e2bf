package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventJobSaved     EventType = "JobSaved"
	EventJobUnsaved   EventType = "JobUnsaved"
	EventJobApplied   EventType = "JobApplied"
	EventLoggedIn     EventType = "LoggedIn"
	EventLoggedOut    EventType = "LoggedOut"
	EventPageChanged  EventType = "PageChanged"
	EventProfileSaved EventType = "ProfileSaved"
	EventError        EventType = "Error"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// JobSavedEvent is emitted when a job is added to the saved list
type JobSavedEvent struct {
	JobID string
}

func (e JobSavedEvent) Type() EventType { return EventJobSaved }

// JobUnsavedEvent is emitted when a job is removed from the saved list
type JobUnsavedEvent struct {
	JobID string
}

func (e JobUnsavedEvent) Type() EventType { return EventJobUnsaved }

// JobAppliedEvent is emitted the first time a job is applied to
type JobAppliedEvent struct {
	JobID string
}

func (e JobAppliedEvent) Type() EventType { return EventJobApplied }

// LoggedInEvent is emitted when the role stub signs a user in
type LoggedInEvent struct {
	Role Role
}

func (e LoggedInEvent) Type() EventType { return EventLoggedIn }

// LoggedOutEvent is emitted on logout
type LoggedOutEvent struct{}

func (e LoggedOutEvent) Type() EventType { return EventLoggedOut }

// PageChangedEvent is emitted when the visible page changes
type PageChangedEvent struct {
	From Page
	To   Page
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// ProfileSavedEvent is emitted when the seeker edits their profile
type ProfileSavedEvent struct {
	Field string
}

func (e ProfileSavedEvent) Type() EventType { return EventProfileSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
