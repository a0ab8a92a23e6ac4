package domain

import (
	"context"
	"time"
)

// Location is the venue/address of an event.
// swagger:model Location
type Location struct {
	Venue   string `json:"venue"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// CityCountry returns the "{city}, {country}" display form used by the
// location filter and the distinct-locations listing.
func (l Location) CityCountry() string {
	return l.City + ", " + l.Country
}

// Organizer is the party hosting an event.
// swagger:model Organizer
type Organizer struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Event represents a listed event. Events are seeded at startup and are
// immutable afterwards, except for AttendeeCount which grows as seats are
// reserved.
// swagger:model Event
type Event struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	LongDescription string     `json:"long_description"`
	Date            time.Time  `json:"date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Location        Location   `json:"location"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	ImageURL        string     `json:"image_url"`
	Price           Price      `json:"price"`
	AttendeeCount   int        `json:"attendee_count"`
	MaxAttendees    int        `json:"max_attendees"`
	Organizer       Organizer  `json:"organizer"`
	Featured        bool       `json:"featured"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SoldOut reports whether the event has no remaining capacity.
func (e *Event) SoldOut() bool {
	return e.AttendeeCount >= e.MaxAttendees
}

// EventFilters restricts an event listing. Zero values mean "no constraint";
// blank or whitespace-only strings are treated as absent.
type EventFilters struct {
	Search   string
	Category string
	Location string
	DateFrom *time.Time
	DateTo   *time.Time
	Featured *bool
}

// EventPage is one page of a filtered, date-sorted event listing.
// Total counts all events matching the filters, before pagination.
// swagger:model EventPage
type EventPage struct {
	Events     []*Event `json:"events"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	// List returns all events in seed order.
	List(ctx context.Context) ([]*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// ReserveSeat atomically checks remaining capacity and increments the
	// attendee count. Returns ErrEventFull when the event is sold out.
	ReserveSeat(ctx context.Context, eventID string) (*Event, error)
}

// EventService defines the read-side query operations over the event store.
type EventService interface {
	ListEvents(ctx context.Context, filters EventFilters, pagination PaginationParams) (*EventPage, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	FeaturedEvents(ctx context.Context) ([]*Event, error)
	Categories(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}
