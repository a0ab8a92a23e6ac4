package memory

import (
	"context"
	"sync"

	"eventsplatform/internal/domain"
)

// TicketRepo is an in-memory, append-only domain.TicketRepository.
type TicketRepo struct {
	mu      sync.RWMutex
	tickets []*domain.Ticket
}

// NewTicketRepo builds a repository pre-populated with the given tickets.
func NewTicketRepo(tickets []*domain.Ticket) *TicketRepo {
	r := &TicketRepo{}
	r.tickets = append(r.tickets, tickets...)
	return r
}

func (r *TicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	clone := *ticket
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = append(r.tickets, &clone)
	return nil
}

// List returns all tickets in insertion order.
func (r *TicketRepo) List(ctx context.Context) ([]*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Ticket, len(r.tickets))
	for i, t := range r.tickets {
		clone := *t
		out[i] = &clone
	}
	return out, nil
}
