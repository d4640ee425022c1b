package memory

import (
	"context"
	"sync"

	"miniEvents/internal/models"
	"miniEvents/internal/storage"
)

// Storage keeps event records in a process-local map. The mutex only makes
// individual calls safe for concurrent use; get-then-put sequences are
// serialized by the service layer's per-event locks.
type Storage struct {
	mu     sync.RWMutex
	events map[string]models.Event
}

func New() *Storage {
	return &Storage{
		events: make(map[string]models.Event),
	}
}

func (s *Storage) Put(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[event.ID] = cloneEvent(event)

	return nil
}

func (s *Storage) Get(_ context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, storage.ErrEventNotFound
	}

	event = cloneEvent(&event)

	return &event, nil
}

func (s *Storage) List(_ context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, cloneEvent(&event))
	}

	return events, nil
}

// cloneEvent copies the record so callers never share the attendee slice
// with the store.
func cloneEvent(event *models.Event) models.Event {
	clone := *event
	clone.Attendees = make([]int64, len(event.Attendees))
	copy(clone.Attendees, event.Attendees)

	return clone
}
