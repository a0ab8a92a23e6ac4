package domain

import (
	"context"
	"time"
)

// Ticket is an issued booking. Event fields are a snapshot taken at booking
// time; later event changes do not retroactively alter issued tickets.
// swagger:model Ticket
type Ticket struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	EventSlug      string    `json:"event_slug"`
	EventTitle     string    `json:"event_title"`
	EventDate      time.Time `json:"event_date"`
	EventLocation  Location  `json:"event_location"`
	AttendeeName   string    `json:"attendee_name"`
	AttendeeEmail  string    `json:"attendee_email"`
	AttendeeMobile string    `json:"attendee_mobile"`
	BookingDate    time.Time `json:"booking_date"`
	Price          Price     `json:"price"`
}

// BookingSubmission carries the validated fields of a booking form. Date is
// the date chosen on the form; the issued ticket snapshots the event's own
// date regardless.
type BookingSubmission struct {
	Name   string
	Email  string
	Mobile string
	Date   string
}

// TicketRepository defines the interface for ticket storage. Tickets are
// append-only; List returns them in insertion order.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	List(ctx context.Context) ([]*Ticket, error)
}

// BookingService defines the booking workflow and the ticket listing.
type BookingService interface {
	// BookTicket resolves the event, reserves a seat, and issues a ticket.
	// Returns ErrNotFound for an unknown slug, ErrEventFull when the event
	// has no remaining capacity, and ErrTransient when fault injection is
	// configured and fires.
	BookTicket(ctx context.Context, eventSlug string, submission BookingSubmission) (*Ticket, error)
	ListTickets(ctx context.Context) ([]*Ticket, error)
}
