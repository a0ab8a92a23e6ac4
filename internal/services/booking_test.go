package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsplatform/internal/clock"
	"eventsplatform/internal/domain"
	"eventsplatform/internal/repository/memory"
)

var testBookingTime = time.Date(2024, time.November, 20, 15, 0, 0, 0, time.UTC)

// recordingEmailService captures sent confirmations.
type recordingEmailService struct {
	sent []*domain.BookingConfirmationEmailData
	err  error
}

func (r *recordingEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, data)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func bookingTestEvents() []*domain.Event {
	return []*domain.Event{
		{
			ID: "1", Slug: "tech-summit-2024", Title: "Tech Summit 2024",
			Date:          date("2024-12-15T10:00:00"),
			Location:      domain.Location{Venue: "Convention Center", City: "Dubai", State: "Dubai", Country: "United Arab Emirates"},
			Price:         domain.PriceOf(299),
			AttendeeCount: 87, MaxAttendees: 100,
		},
		{
			ID: "2", Slug: "sold-out-show", Title: "Sold Out Show",
			Date:          date("2024-12-20T20:00:00"),
			Price:         domain.PriceOf(50),
			AttendeeCount: 100, MaxAttendees: 100,
		},
	}
}

func validSubmission() domain.BookingSubmission {
	return domain.BookingSubmission{
		Name:   "Ahmed Ali",
		Email:  "ahmed.ali@example.com",
		Mobile: "+971501234567",
		Date:   "2024-12-15",
	}
}

func TestBookTicket_Success(t *testing.T) {
	eventRepo := memory.NewEventRepo(bookingTestEvents())
	ticketRepo := memory.NewTicketRepo(nil)
	emails := &recordingEmailService{}
	svc := NewBookingService(eventRepo, ticketRepo, emails, clock.NewFixed(testBookingTime), testLogger())

	ticket, err := svc.BookTicket(context.Background(), "tech-summit-2024", validSubmission())
	require.NoError(t, err)
	require.NotNil(t, ticket)

	// Denormalized snapshot of the event at booking time.
	assert.Equal(t, "1", ticket.EventID)
	assert.Equal(t, "tech-summit-2024", ticket.EventSlug)
	assert.Equal(t, "Tech Summit 2024", ticket.EventTitle)
	assert.Equal(t, date("2024-12-15T10:00:00"), ticket.EventDate)
	assert.Equal(t, "Convention Center", ticket.EventLocation.Venue)
	assert.Equal(t, domain.PriceOf(299), ticket.Price)
	assert.Equal(t, "Ahmed Ali", ticket.AttendeeName)
	assert.Equal(t, "ahmed.ali@example.com", ticket.AttendeeEmail)
	assert.Equal(t, "+971501234567", ticket.AttendeeMobile)
	assert.Equal(t, testBookingTime, ticket.BookingDate)
	assert.NotEmpty(t, ticket.ID)

	// Seat reserved.
	e, err := eventRepo.GetBySlug(context.Background(), "tech-summit-2024")
	require.NoError(t, err)
	assert.Equal(t, 88, e.AttendeeCount)

	// Ticket persisted.
	tickets, err := ticketRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, ticket.ID, tickets[0].ID)

	// Confirmation sent.
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "ahmed.ali@example.com", emails.sent[0].Email)
	assert.Equal(t, "Tech Summit 2024", emails.sent[0].EventTitle)
}

func TestBookTicket_UnknownSlug(t *testing.T) {
	eventRepo := memory.NewEventRepo(bookingTestEvents())
	ticketRepo := memory.NewTicketRepo(nil)
	svc := NewBookingService(eventRepo, ticketRepo, nil, clock.NewFixed(testBookingTime), testLogger())

	_, err := svc.BookTicket(context.Background(), "no-such-event", validSubmission())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	tickets, err := ticketRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets, "no ticket may be created for an unknown event")
}

func TestBookTicket_FullyBooked(t *testing.T) {
	eventRepo := memory.NewEventRepo(bookingTestEvents())
	ticketRepo := memory.NewTicketRepo(nil)
	svc := NewBookingService(eventRepo, ticketRepo, nil, clock.NewFixed(testBookingTime), testLogger())

	_, err := svc.BookTicket(context.Background(), "sold-out-show", validSubmission())
	assert.ErrorIs(t, err, domain.ErrEventFull)

	tickets, err := ticketRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets, "no ticket may be created for a full event")

	e, err := eventRepo.GetBySlug(context.Background(), "sold-out-show")
	require.NoError(t, err)
	assert.Equal(t, 100, e.AttendeeCount)
}

func TestBookTicket_CapacityEnforcedAcrossBookings(t *testing.T) {
	events := []*domain.Event{{
		ID: "1", Slug: "small-workshop", Title: "Small Workshop",
		Date: date("2025-01-05T09:00:00"), AttendeeCount: 0, MaxAttendees: 2,
	}}
	eventRepo := memory.NewEventRepo(events)
	ticketRepo := memory.NewTicketRepo(nil)
	svc := NewBookingService(eventRepo, ticketRepo, nil, clock.NewFixed(testBookingTime), testLogger())
	ctx := context.Background()

	_, err := svc.BookTicket(ctx, "small-workshop", validSubmission())
	require.NoError(t, err)
	_, err = svc.BookTicket(ctx, "small-workshop", validSubmission())
	require.NoError(t, err)

	// Third booking sees the two reservations above.
	_, err = svc.BookTicket(ctx, "small-workshop", validSubmission())
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestBookTicket_FaultInjection(t *testing.T) {
	eventRepo := memory.NewEventRepo(bookingTestEvents())
	ticketRepo := memory.NewTicketRepo(nil)

	svc := NewBookingService(eventRepo, ticketRepo, nil, clock.NewFixed(testBookingTime), testLogger(),
		WithFaultInjection(0.1),
		withRandom(func() float64 { return 0.05 }),
	)
	_, err := svc.BookTicket(context.Background(), "tech-summit-2024", validSubmission())
	assert.ErrorIs(t, err, domain.ErrTransient)

	tickets, listErr := ticketRepo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, tickets, "an injected failure must leave no partial state")

	svc = NewBookingService(eventRepo, ticketRepo, nil, clock.NewFixed(testBookingTime), testLogger(),
		WithFaultInjection(0.1),
		withRandom(func() float64 { return 0.95 }),
	)
	_, err = svc.BookTicket(context.Background(), "tech-summit-2024", validSubmission())
	assert.NoError(t, err)
}

func TestBookTicket_FaultInjectionDisabledByDefault(t *testing.T) {
	eventRepo := memory.NewEventRepo(bookingTestEvents())
	svc := NewBookingService(eventRepo, memory.NewTicketRepo(nil), nil, clock.NewFixed(testBookingTime), testLogger(),
		withRandom(func() float64 { return 0.0 }),
	)

	_, err := svc.BookTicket(context.Background(), "tech-summit-2024", validSubmission())
	assert.NoError(t, err)
}

func TestBookTicket_SimulatedDelayHonorsCancellation(t *testing.T) {
	eventRepo := memory.NewEventRepo(bookingTestEvents())
	svc := NewBookingService(eventRepo, memory.NewTicketRepo(nil), nil, clock.NewFixed(testBookingTime), testLogger(),
		WithSimulatedDelay(5*time.Second),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.BookTicket(ctx, "tech-summit-2024", validSubmission())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBookTicket_EmailFailureDoesNotFailBooking(t *testing.T) {
	eventRepo := memory.NewEventRepo(bookingTestEvents())
	ticketRepo := memory.NewTicketRepo(nil)
	emails := &recordingEmailService{err: errors.New("smtp down")}
	svc := NewBookingService(eventRepo, ticketRepo, emails, clock.NewFixed(testBookingTime), testLogger())

	ticket, err := svc.BookTicket(context.Background(), "tech-summit-2024", validSubmission())
	require.NoError(t, err)
	assert.NotNil(t, ticket)
}

func TestListTickets_InsertionOrder(t *testing.T) {
	ticketRepo := memory.NewTicketRepo(memory.SeedTickets())
	svc := NewBookingService(memory.NewEventRepo(nil), ticketRepo, nil, clock.NewSystem(), testLogger())

	tickets, err := svc.ListTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.Equal(t, "ticket-1", tickets[0].ID)
	assert.Equal(t, "ticket-2", tickets[1].ID)
	assert.Equal(t, "ticket-3", tickets[2].ID)
}

func TestListTickets_EmptyStore(t *testing.T) {
	svc := NewBookingService(memory.NewEventRepo(nil), memory.NewTicketRepo(nil), nil, clock.NewSystem(), testLogger())

	tickets, err := svc.ListTickets(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tickets)
	assert.Empty(t, tickets)
}
