package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventsplatform/internal/delivery/http/controllers"
	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/delivery/http/web"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, ticketController *controllers.TicketController, pages *web.PageHandlers) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/featured", eventController.FeaturedEvents)
	mux.HandleFunc("GET /api/events/categories", eventController.Categories)
	mux.HandleFunc("GET /api/events/locations", eventController.Locations)
	mux.HandleFunc("GET /api/events/{slug}", eventController.GetEventBySlug)
	mux.HandleFunc("POST /api/events/{slug}/book", ticketController.BookTicket)
	mux.HandleFunc("GET /api/tickets", ticketController.ListTickets)

	// Pages (locale prefix is guaranteed by the locale middleware)
	mux.HandleFunc("GET /{locale}", redirectToEvents)
	mux.HandleFunc("GET /{locale}/events", pages.EventsPage)
	mux.HandleFunc("GET /{locale}/events/{slug}", pages.EventDetailPage)
	mux.HandleFunc("GET /{locale}/events/{slug}/book", pages.BookPage)
	mux.HandleFunc("POST /{locale}/events/{slug}/book", pages.BookSubmit)
	mux.HandleFunc("GET /{locale}/tickets", pages.TicketsPage)
	mux.HandleFunc("GET /{locale}/tickets/{id}/print", pages.TicketPrintPage)

	// SEO
	mux.HandleFunc("GET /sitemap.xml", pages.SitemapXML)
	mux.HandleFunc("GET /robots.txt", pages.RobotsTxt)

	// Health
	mux.HandleFunc("GET /healthz", healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func redirectToEvents(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, r.URL.Path+"/events", http.StatusFound)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
