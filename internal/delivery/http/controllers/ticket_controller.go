package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// mobileRegex matches an international phone number: optional leading +,
// 1-4 digit country code, optional separators, up to 9 trailing digits.
var mobileRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)

// BookTicketRequest is the request body for POST /api/events/{slug}/book.
type BookTicketRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Date   string `json:"date"`
}

// Validate implements Validator. Returns per-field error messages.
func (b BookTicketRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(b.Name) == "" {
		errs = append(errs, "name is required")
	}
	if b.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(b.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	if b.Mobile == "" {
		errs = append(errs, "mobile is required")
	} else if !mobileRegex.MatchString(strings.TrimSpace(b.Mobile)) {
		errs = append(errs, "mobile must be a valid phone number")
	}
	if strings.TrimSpace(b.Date) == "" {
		errs = append(errs, "date is required")
	}
	return errs
}

type TicketController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewTicketController(logger *slog.Logger, svc domain.BookingService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// BookTicketSuccessResponse is the success response envelope for POST /api/events/{slug}/book (201).
type BookTicketSuccessResponse struct {
	Data  *domain.Ticket    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BookTicket godoc
// @Summary Book a ticket for an event
// @Description Validates the attendee details, reserves a seat on the event, and issues a ticket. Event fields on the ticket are a snapshot taken at booking time.
// @Tags tickets
// @Accept json
// @Produce json
// @Param slug path string true "Event slug"
// @Param body body BookTicketRequest true "Attendee details"
// @Success 201 {object} controllers.BookTicketSuccessResponse "data contains the issued ticket"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: sold_out"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{slug}/book [post]
func (c *TicketController) BookTicket(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	var req BookTicketRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	submission := domain.BookingSubmission{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Mobile: strings.TrimSpace(req.Mobile),
		Date:   strings.TrimSpace(req.Date),
	}
	ticket, err := c.Service.BookTicket(r.Context(), slug, submission)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Event not found.")
			return
		}
		if errors.Is(err, domain.ErrEventFull) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeSoldOut, "This event is fully booked.")
			return
		}
		if errors.Is(err, domain.ErrTransient) {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "Network error. Please try again later.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ticket)
}

// ListTicketsSuccessResponse is the success response envelope for GET /api/tickets (200).
type ListTicketsSuccessResponse struct {
	Data  []*domain.Ticket  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListTickets godoc
// @Summary List issued tickets
// @Description Returns all issued tickets in booking order.
// @Tags tickets
// @Produce json
// @Success 200 {object} controllers.ListTicketsSuccessResponse "data is an array of tickets"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/tickets [get]
func (c *TicketController) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := c.Service.ListTickets(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if tickets == nil {
		tickets = []*domain.Ticket{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tickets)
}
