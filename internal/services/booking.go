package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"eventsplatform/internal/clock"
	"eventsplatform/internal/domain"
	"eventsplatform/internal/i18n"
)

type bookingService struct {
	eventRepo    domain.EventRepository
	ticketRepo   domain.TicketRepository
	emailService domain.EmailService
	clk          clock.Clock
	logger       *slog.Logger

	failureRate float64
	delay       time.Duration
	random      func() float64
}

// BookingServiceOption configures optional booking behavior.
type BookingServiceOption func(*bookingService)

// WithFaultInjection makes a fraction of bookings fail with ErrTransient.
// rate is clamped to [0, 1]; 0 disables injection.
func WithFaultInjection(rate float64) BookingServiceOption {
	return func(s *bookingService) {
		if rate < 0 {
			rate = 0
		}
		if rate > 1 {
			rate = 1
		}
		s.failureRate = rate
	}
}

// WithSimulatedDelay adds an artificial latency before each booking,
// interruptible by context cancellation.
func WithSimulatedDelay(d time.Duration) BookingServiceOption {
	return func(s *bookingService) {
		if d > 0 {
			s.delay = d
		}
	}
}

// withRandom overrides the randomness source (tests only).
func withRandom(random func() float64) BookingServiceOption {
	return func(s *bookingService) {
		s.random = random
	}
}

// NewBookingService creates a BookingService. emailService may be nil, in
// which case no confirmation email is sent.
func NewBookingService(
	eventRepo domain.EventRepository,
	ticketRepo domain.TicketRepository,
	emailService domain.EmailService,
	clk clock.Clock,
	logger *slog.Logger,
	opts ...BookingServiceOption,
) domain.BookingService {
	s := &bookingService{
		eventRepo:    eventRepo,
		ticketRepo:   ticketRepo,
		emailService: emailService,
		clk:          clk,
		logger:       logger,
		random:       rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookingService) BookTicket(ctx context.Context, eventSlug string, submission domain.BookingSubmission) (*domain.Ticket, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if s.failureRate > 0 && s.random() < s.failureRate {
		return nil, domain.ErrTransient
	}

	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// Reserve before issuing the ticket so a sold-out event never produces one.
	event, err = s.eventRepo.ReserveSeat(ctx, event.ID)
	if err != nil {
		if errors.Is(err, domain.ErrEventFull) {
			return nil, domain.ErrEventFull
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reserve seat: %w", err)
	}

	now := s.clk.Now()
	ticket := &domain.Ticket{
		ID:             "ticket-" + uuid.NewString(),
		EventID:        event.ID,
		EventSlug:      event.Slug,
		EventTitle:     event.Title,
		EventDate:      event.Date,
		EventLocation:  event.Location,
		AttendeeName:   submission.Name,
		AttendeeEmail:  submission.Email,
		AttendeeMobile: submission.Mobile,
		BookingDate:    now,
		Price:          event.Price,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	// Confirmation email is best effort; the booking stands either way.
	if s.emailService != nil {
		data := &domain.BookingConfirmationEmailData{
			AttendeeName: ticket.AttendeeName,
			Email:        ticket.AttendeeEmail,
			EventTitle:   ticket.EventTitle,
			EventDate:    i18n.FormatLongDate(ticket.EventDate, i18n.DefaultLocale),
			Venue:        ticket.EventLocation.Venue,
			TicketID:     ticket.ID,
			PriceLabel:   i18n.FormatPrice(ticket.Price, i18n.DefaultLocale),
		}
		if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "booking confirmation email failed",
				"ticket_id", ticket.ID, "err", err)
		}
	}

	return ticket, nil
}

func (s *bookingService) ListTickets(ctx context.Context) ([]*domain.Ticket, error) {
	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	if tickets == nil {
		tickets = []*domain.Ticket{}
	}
	return tickets, nil
}
