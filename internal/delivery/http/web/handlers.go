package web

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"eventsplatform/internal/clock"
	"eventsplatform/internal/delivery/http/controllers"
	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/delivery/http/middleware"
	"eventsplatform/internal/domain"
	"eventsplatform/internal/i18n"
	"eventsplatform/internal/seo"
)

// sitemapEventLimit bounds the event listing used for the sitemap. The seed
// store is far below this; it only guards against unbounded output.
const sitemapEventLimit = 1000

const qrImageSize = 192

// PageHandlers serves the server-rendered pages and the SEO endpoints.
type PageHandlers struct {
	Logger  *slog.Logger
	Events  domain.EventService
	Booking domain.BookingService
	BaseURL string
	Clock   clock.Clock

	renderer *renderer
}

func NewPageHandlers(logger *slog.Logger, events domain.EventService, booking domain.BookingService, baseURL string, clk clock.Clock) (*PageHandlers, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &PageHandlers{
		Logger:   logger,
		Events:   events,
		Booking:  booking,
		BaseURL:  baseURL,
		Clock:    clk,
		renderer: r,
	}, nil
}

// basePage carries the fields every layout-rendered page needs.
type basePage struct {
	Meta   seo.PageMetadata
	Locale i18n.Locale
	Lang   string
	Dir    string
	Labels labelSet
	JSONLD []template.JS
}

func (h *PageHandlers) newBasePage(locale i18n.Locale, meta seo.PageMetadata, schemas ...any) basePage {
	dir := "ltr"
	if locale.IsRTL() {
		dir = "rtl"
	}
	jsonLD := make([]template.JS, 0, len(schemas))
	for _, s := range schemas {
		b, err := json.Marshal(s)
		if err != nil {
			h.Logger.Warn("marshal structured data", "err", err)
			continue
		}
		jsonLD = append(jsonLD, template.JS(b))
	}
	return basePage{
		Meta:   meta,
		Locale: locale,
		Lang:   string(locale),
		Dir:    dir,
		Labels: labelsFor(locale),
		JSONLD: jsonLD,
	}
}

func (h *PageHandlers) locale(r *http.Request) i18n.Locale {
	if l, ok := middleware.LocaleFromContext(r.Context()); ok {
		return l
	}
	return i18n.DefaultLocale
}

func (h *PageHandlers) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.render(w, name, data); err != nil {
		h.Logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "template", name, "err", err)
	}
}

func (h *PageHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// eventsPage is the view model for the events listing.
type eventsPage struct {
	basePage
	Page       *domain.EventPage
	Featured   []*domain.Event
	Categories []string
	Locations  []string
	Query      url.Values
	PrevURL    string
	NextURL    string
}

// EventsPage renders the filtered, paginated events listing.
func (h *PageHandlers) EventsPage(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	l := labelsFor(locale)

	filters := helpers.ParseEventFilters(r)
	pagination := helpers.ParsePagination(r)
	page, err := h.Events.ListEvents(r.Context(), filters, pagination)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	featured, err := h.Events.FeaturedEvents(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categories, err := h.Events.Categories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	locations, err := h.Events.Locations(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	meta := seo.BuildPageMetadata(h.BaseURL, seo.MetadataOptions{
		Title:       l.Events + " | " + l.SiteName,
		Description: "Discover upcoming events and book your tickets.",
		Keywords:    append([]string{"events", "tickets", "booking"}, categories...),
		Locale:      locale,
		Path:        r.URL.Path,
	})
	schema := seo.BuildCollectionPageSchema(page.Events, page.Total, locale, h.BaseURL, seo.CollectionPageOptions{
		Name:        l.Events,
		Description: meta.Description,
		URL:         meta.Canonical,
	})

	data := eventsPage{
		basePage:   h.newBasePage(locale, meta, schema),
		Page:       page,
		Featured:   featured,
		Categories: categories,
		Locations:  locations,
		Query:      r.URL.Query(),
	}
	if page.Page > 1 {
		data.PrevURL = pageURL(r, page.Page-1)
	}
	if page.Page < page.TotalPages {
		data.NextURL = pageURL(r, page.Page+1)
	}
	h.renderPage(w, r, http.StatusOK, "events.html", data)
}

func pageURL(r *http.Request, page int) string {
	q := r.URL.Query()
	q.Set("page", strconv.Itoa(page))
	return r.URL.Path + "?" + q.Encode()
}

// eventDetailPage is the view model for a single event page.
type eventDetailPage struct {
	basePage
	Event   *domain.Event
	BookURL string
}

// EventDetailPage renders one event with its structured data.
func (h *PageHandlers) EventDetailPage(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	l := labelsFor(locale)

	event, err := h.Events.GetEventBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.fail(w, r, err)
		return
	}

	meta := seo.BuildPageMetadata(h.BaseURL, seo.MetadataOptions{
		Title:       event.Title + " | " + l.SiteName,
		Description: event.Description,
		Keywords:    append([]string{event.Category}, event.Tags...),
		Locale:      locale,
		Path:        r.URL.Path,
		ImageURL:    event.ImageURL,
		ImageAlt:    event.Title,
	})
	eventSchema := seo.BuildEventSchema(event, locale, h.BaseURL, seo.EventSchemaOptions{
		IncludeEventStatus:         true,
		IncludeEventAttendanceMode: true,
		IncludePerformer:           true,
		IncludeValidFrom:           true,
	})

	data := eventDetailPage{
		basePage: h.newBasePage(locale, meta, eventSchema),
		Event:    event,
		BookURL:  fmt.Sprintf("/%s/events/%s/book", locale, event.Slug),
	}
	h.renderPage(w, r, http.StatusOK, "event_detail.html", data)
}

// bookPage is the view model for the booking form and its confirmation state.
type bookPage struct {
	basePage
	Event  *domain.Event
	Form   url.Values
	Errors []string
	Banner string
	Ticket *domain.Ticket
}

// BookPage renders the booking form for an event.
func (h *PageHandlers) BookPage(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	l := labelsFor(locale)

	event, err := h.Events.GetEventBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.fail(w, r, err)
		return
	}

	meta := seo.BuildPageMetadata(h.BaseURL, seo.MetadataOptions{
		Title:       l.BookNow + ": " + event.Title + " | " + l.SiteName,
		Description: event.Description,
		Locale:      locale,
		Path:        r.URL.Path,
		ImageURL:    event.ImageURL,
	})
	reservation := seo.BuildReservationActionSchema(event, locale, h.BaseURL)

	data := bookPage{
		basePage: h.newBasePage(locale, meta, reservation),
		Event:    event,
		Form:     url.Values{},
	}
	h.renderPage(w, r, http.StatusOK, "book.html", data)
}

// BookSubmit handles the booking form POST. Validation failures and booking
// errors re-render the form; success renders the confirmation state.
func (h *PageHandlers) BookSubmit(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	l := labelsFor(locale)
	slug := r.PathValue("slug")

	event, err := h.Events.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.fail(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	meta := seo.BuildPageMetadata(h.BaseURL, seo.MetadataOptions{
		Title:       l.BookNow + ": " + event.Title + " | " + l.SiteName,
		Description: event.Description,
		Locale:      locale,
		Path:        r.URL.Path,
		ImageURL:    event.ImageURL,
	})
	data := bookPage{
		basePage: h.newBasePage(locale, meta),
		Event:    event,
		Form:     r.PostForm,
	}

	req := controllers.BookTicketRequest{
		Name:   r.PostFormValue("name"),
		Email:  r.PostFormValue("email"),
		Mobile: r.PostFormValue("mobile"),
		Date:   r.PostFormValue("date"),
	}
	if errs := req.Validate(); len(errs) > 0 {
		data.Errors = errs
		h.renderPage(w, r, http.StatusBadRequest, "book.html", data)
		return
	}

	submission := domain.BookingSubmission{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Mobile: strings.TrimSpace(req.Mobile),
		Date:   strings.TrimSpace(req.Date),
	}
	ticket, err := h.Booking.BookTicket(r.Context(), slug, submission)
	if err != nil {
		var status int
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
			data.Banner = "Event not found."
		case errors.Is(err, domain.ErrEventFull):
			status = http.StatusConflict
			data.Banner = "This event is fully booked."
		case errors.Is(err, domain.ErrTransient):
			status = http.StatusServiceUnavailable
			data.Banner = "Network error. Please try again later."
		default:
			h.fail(w, r, err)
			return
		}
		h.renderPage(w, r, status, "book.html", data)
		return
	}

	data.Ticket = ticket
	h.renderPage(w, r, http.StatusCreated, "book.html", data)
}

// ticketsPage is the view model for the my-tickets listing.
type ticketsPage struct {
	basePage
	Tickets []*domain.Ticket
}

// TicketsPage renders the issued tickets. The page is not indexable.
func (h *PageHandlers) TicketsPage(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	l := labelsFor(locale)

	tickets, err := h.Booking.ListTickets(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	meta := seo.BuildPageMetadata(h.BaseURL, seo.MetadataOptions{
		Title:       l.MyTickets + " | " + l.SiteName,
		Description: "Your booked event tickets.",
		Locale:      locale,
		Path:        r.URL.Path,
		NoIndex:     true,
	})
	schema := seo.BuildTicketsCollectionPageSchema(tickets, seo.CollectionPageOptions{
		Name: l.MyTickets,
		URL:  meta.Canonical,
	})

	data := ticketsPage{
		basePage: h.newBasePage(locale, meta, schema),
		Tickets:  tickets,
	}
	h.renderPage(w, r, http.StatusOK, "tickets.html", data)
}

// ticketPrintPage is the view model for the standalone printable ticket.
type ticketPrintPage struct {
	Locale    i18n.Locale
	Lang      string
	Dir       string
	Labels    labelSet
	Ticket    *domain.Ticket
	QRDataURI template.URL
}

// TicketPrintPage renders a standalone printable document for one ticket,
// with a QR code pointing back at the ticket URL.
func (h *PageHandlers) TicketPrintPage(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	id := r.PathValue("id")

	tickets, err := h.Booking.ListTickets(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var ticket *domain.Ticket
	for _, t := range tickets {
		if t.ID == id {
			ticket = t
			break
		}
	}
	if ticket == nil {
		http.NotFound(w, r)
		return
	}

	qrTarget := fmt.Sprintf("%s/%s/tickets/%s", h.BaseURL, locale, ticket.ID)
	png, err := qrcode.Encode(qrTarget, qrcode.Medium, qrImageSize)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	dir := "ltr"
	if locale.IsRTL() {
		dir = "rtl"
	}
	data := ticketPrintPage{
		Locale:    locale,
		Lang:      string(locale),
		Dir:       dir,
		Labels:    labelsFor(locale),
		Ticket:    ticket,
		QRDataURI: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
	}
	h.renderPage(w, r, http.StatusOK, "ticket_print.html", data)
}

// SitemapXML serves the locale-aware sitemap over all events.
func (h *PageHandlers) SitemapXML(w http.ResponseWriter, r *http.Request) {
	page, err := h.Events.ListEvents(r.Context(), domain.EventFilters{}, domain.PaginationParams{Page: 1, Limit: sitemapEventLimit})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	entries := seo.BuildSitemap(page.Events, h.BaseURL, h.Clock.Now())
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := seo.WriteSitemapXML(w, entries); err != nil {
		h.Logger.ErrorContext(r.Context(), "write sitemap", "err", err)
	}
}

// RobotsTxt serves robots.txt.
func (h *PageHandlers) RobotsTxt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.BuildRobotsTxt(h.BaseURL)))
}
