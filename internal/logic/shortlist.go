package logic

import (
	"slices"
	"sync"

	"jobboard/internal/domain"
)

// MemoryShortlist is an in-memory implementation of ShortlistStore.
// Ids keep the order in which they were added.
type MemoryShortlist struct {
	mu      sync.RWMutex
	saved   []string
	applied []string
	bus     Publisher
}

// NewMemoryShortlist creates a shortlist. bus may be nil.
func NewMemoryShortlist(bus Publisher) *MemoryShortlist {
	return &MemoryShortlist{bus: bus}
}

// ToggleSave adds or removes id from the saved list and reports whether it
// is saved afterwards
func (s *MemoryShortlist) ToggleSave(id string) bool {
	s.mu.Lock()
	var event domain.DomainEvent
	saved := false
	if i := slices.Index(s.saved, id); i >= 0 {
		s.saved = slices.Delete(s.saved, i, i+1)
		event = domain.JobUnsavedEvent{JobID: id}
	} else {
		s.saved = append(s.saved, id)
		event = domain.JobSavedEvent{JobID: id}
		saved = true
	}
	s.mu.Unlock()

	s.publish(event)
	return saved
}

// Apply records an application. Returns false if already applied.
func (s *MemoryShortlist) Apply(id string) bool {
	s.mu.Lock()
	if slices.Contains(s.applied, id) {
		s.mu.Unlock()
		return false
	}
	s.applied = append(s.applied, id)
	s.mu.Unlock()

	s.publish(domain.JobAppliedEvent{JobID: id})
	return true
}

func (s *MemoryShortlist) IsSaved(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.saved, id)
}

func (s *MemoryShortlist) IsApplied(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.applied, id)
}

// Saved returns a copy of the saved ids
func (s *MemoryShortlist) Saved() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.saved)
}

// Applied returns a copy of the applied ids
func (s *MemoryShortlist) Applied() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.applied)
}

// Clear forgets everything, used on logout
func (s *MemoryShortlist) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = nil
	s.applied = nil
}

func (s *MemoryShortlist) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
