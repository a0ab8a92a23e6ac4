package memory

import (
	"context"
	"sync"

	"eventsplatform/internal/domain"
)

// EventRepo is an in-memory domain.EventRepository. The event list is fixed
// at construction; only attendee counts change, under the repo lock.
type EventRepo struct {
	mu     sync.RWMutex
	events []*domain.Event
	bySlug map[string]*domain.Event
	byID   map[string]*domain.Event
}

// NewEventRepo builds a repository over the given events, preserving order.
// Later events with a duplicate slug or ID are ignored.
func NewEventRepo(events []*domain.Event) *EventRepo {
	r := &EventRepo{
		bySlug: make(map[string]*domain.Event, len(events)),
		byID:   make(map[string]*domain.Event, len(events)),
	}
	for _, e := range events {
		if _, ok := r.bySlug[e.Slug]; ok {
			continue
		}
		if _, ok := r.byID[e.ID]; ok {
			continue
		}
		r.events = append(r.events, e)
		r.bySlug[e.Slug] = e
		r.byID[e.ID] = e
	}
	return r
}

// List returns a copy of the event list in seed order. The returned events
// are snapshots; mutating them does not affect the store.
func (r *EventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Event, len(r.events))
	for i, e := range r.events {
		clone := *e
		out[i] = &clone
	}
	return out, nil
}

func (r *EventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

// ReserveSeat atomically checks capacity and increments the attendee count.
func (r *EventRepo) ReserveSeat(ctx context.Context, eventID string) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if e.AttendeeCount >= e.MaxAttendees {
		return nil, domain.ErrEventFull
	}
	e.AttendeeCount++
	clone := *e
	return &clone, nil
}
