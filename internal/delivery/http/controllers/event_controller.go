package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEventsSuccessResponse is the success response envelope for GET /api/events (200).
type ListEventsSuccessResponse struct {
	Data  *domain.EventPage `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEvents godoc
// @Summary List events
// @Description Returns a filtered, date-sorted, paginated page of events. All filters are optional and combined with AND. Search matches the title case-insensitively; category is an exact match; location matches "{city}, {country}", city, or country case-insensitively; date bounds are inclusive. Malformed filter values are ignored.
// @Tags events
// @Produce json
// @Param search query string false "Case-insensitive title substring"
// @Param category query string false "Exact category"
// @Param location query string false "Case-insensitive location substring"
// @Param date_from query string false "Earliest event date (YYYY-MM-DD or RFC 3339)"
// @Param date_to query string false "Latest event date (YYYY-MM-DD or RFC 3339)"
// @Param featured query bool false "Only featured (true) or only non-featured (false)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (defaults to the configured page size, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains events, total, page, limit, total_pages"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	filters := helpers.ParseEventFilters(r)
	pagination := helpers.ParsePagination(r)
	page, err := c.Service.ListEvents(r.Context(), filters, pagination)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}

// GetEventSuccessResponse is the success response envelope for GET /api/events/{slug} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Returns a single event by its URL slug.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Event not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// FeaturedEventsSuccessResponse is the success response envelope for GET /api/events/featured (200).
type FeaturedEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// FeaturedEvents godoc
// @Summary List featured events
// @Description Returns up to three featured events in store order.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.FeaturedEventsSuccessResponse "data is an array of events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/featured [get]
func (c *EventController) FeaturedEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.FeaturedEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListStringsSuccessResponse is the success response envelope for the
// categories and locations listings (200).
type ListStringsSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Categories godoc
// @Summary List distinct categories
// @Description Returns the distinct event categories, sorted ascending.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListStringsSuccessResponse "data is an array of category names"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/categories [get]
func (c *EventController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Service.Categories(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if categories == nil {
		categories = []string{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, categories)
}

// Locations godoc
// @Summary List distinct locations
// @Description Returns the distinct "{city}, {country}" values, sorted ascending.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListStringsSuccessResponse "data is an array of location names"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/locations [get]
func (c *EventController) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.Service.Locations(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if locations == nil {
		locations = []string{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, locations)
}
