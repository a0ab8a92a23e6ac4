package seo

import (
	"fmt"
	"time"

	"eventsplatform/internal/domain"
	"eventsplatform/internal/i18n"
)

// schema.org JSON-LD builders mirroring the shapes used across the site:
// Event and ReservationAction on detail/booking pages, CollectionPage with
// an ItemList on listing pages.

const (
	schemaContext         = "https://schema.org"
	availabilityInStock   = "https://schema.org/InStock"
	availabilitySoldOut   = "https://schema.org/SoldOut"
	eventScheduled        = "https://schema.org/EventScheduled"
	offlineAttendanceMode = "https://schema.org/OfflineEventAttendanceMode"
	collectionItemListCap = 10
)

// PostalAddress is a schema.org PostalAddress.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	AddressCountry  string `json:"addressCountry"`
}

// PlaceSchema is a schema.org Place.
type PlaceSchema struct {
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	Address PostalAddress `json:"address"`
}

// OrganizationSchema is a schema.org Organization.
type OrganizationSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// OfferSchema is a schema.org Offer.
type OfferSchema struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability,omitempty"`
	URL           string `json:"url"`
	ValidFrom     string `json:"validFrom,omitempty"`
}

// EventSchema is a schema.org Event.
type EventSchema struct {
	Context             string              `json:"@context,omitempty"`
	Type                string              `json:"@type"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	StartDate           string              `json:"startDate"`
	EndDate             string              `json:"endDate"`
	EventStatus         string              `json:"eventStatus,omitempty"`
	EventAttendanceMode string              `json:"eventAttendanceMode,omitempty"`
	Location            PlaceSchema         `json:"location"`
	Image               string              `json:"image,omitempty"`
	Organizer           *OrganizationSchema `json:"organizer,omitempty"`
	Offers              OfferSchema         `json:"offers"`
	Performer           *OrganizationSchema `json:"performer,omitempty"`
}

// TicketSchema is a schema.org Ticket.
type TicketSchema struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EventReservationSchema is a schema.org EventReservation.
type EventReservationSchema struct {
	Type           string      `json:"@type"`
	ReservationFor EventSchema `json:"reservationFor"`
}

// ReservationActionSchema is a schema.org ReservationAction for booking pages.
type ReservationActionSchema struct {
	Context string                 `json:"@context"`
	Type    string                 `json:"@type"`
	Target  EventReservationSchema `json:"target"`
	Object  TicketSchema           `json:"object"`
}

// ListItemSchema is a schema.org ListItem.
type ListItemSchema struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Item     any    `json:"item"`
}

// ItemListSchema is a schema.org ItemList.
type ItemListSchema struct {
	Type            string           `json:"@type"`
	NumberOfItems   int              `json:"numberOfItems"`
	ItemListElement []ListItemSchema `json:"itemListElement"`
}

// CollectionPageSchema is a schema.org CollectionPage for listing pages.
type CollectionPageSchema struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	MainEntity  ItemListSchema `json:"mainEntity"`
}

// EventSchemaOptions toggles the optional Event fields used on detail pages.
type EventSchemaOptions struct {
	IncludeEventStatus         bool
	IncludeEventAttendanceMode bool
	IncludePerformer           bool
	IncludeValidFrom           bool
}

// BuildPlaceSchema builds a Place from an event location.
func BuildPlaceSchema(location domain.Location) PlaceSchema {
	return PlaceSchema{
		Type: "Place",
		Name: location.Venue,
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   location.Venue,
			AddressLocality: location.City,
			AddressRegion:   location.State,
			AddressCountry:  location.Country,
		},
	}
}

// BuildOrganizerSchema builds an Organization from an event organizer.
func BuildOrganizerSchema(organizer domain.Organizer) OrganizationSchema {
	return OrganizationSchema{Type: "Organization", Name: organizer.Name}
}

// BuildOfferSchema builds an Offer; availability reflects remaining capacity.
func BuildOfferSchema(event *domain.Event, locale i18n.Locale, baseURL string, includeValidFrom bool) OfferSchema {
	availability := availabilityInStock
	if event.SoldOut() {
		availability = availabilitySoldOut
	}
	offer := OfferSchema{
		Type:          "Offer",
		Price:         event.Price.SchemaValue(),
		PriceCurrency: "USD",
		Availability:  availability,
		URL:           fmt.Sprintf("%s/%s/events/%s/book", baseURL, locale, event.Slug),
	}
	if includeValidFrom {
		offer.ValidFrom = event.CreatedAt.Format(time.RFC3339)
	}
	return offer
}

// BuildEventSchema builds an Event for JSON-LD embedding.
func BuildEventSchema(event *domain.Event, locale i18n.Locale, baseURL string, opts EventSchemaOptions) EventSchema {
	organizer := BuildOrganizerSchema(event.Organizer)
	schema := EventSchema{
		Context:     schemaContext,
		Type:        "Event",
		Name:        event.Title,
		Description: event.Description,
		StartDate:   event.Date.Format(time.RFC3339),
		EndDate:     eventEndDate(event),
		Location:    BuildPlaceSchema(event.Location),
		Image:       event.ImageURL,
		Organizer:   &organizer,
		Offers:      BuildOfferSchema(event, locale, baseURL, opts.IncludeValidFrom),
	}
	if opts.IncludeEventStatus {
		schema.EventStatus = eventScheduled
	}
	if opts.IncludeEventAttendanceMode {
		schema.EventAttendanceMode = offlineAttendanceMode
	}
	if opts.IncludePerformer {
		performer := BuildOrganizerSchema(event.Organizer)
		schema.Performer = &performer
	}
	return schema
}

// BuildReservationActionSchema builds the ReservationAction for booking pages.
func BuildReservationActionSchema(event *domain.Event, locale i18n.Locale, baseURL string) ReservationActionSchema {
	reservationFor := BuildEventSchema(event, locale, baseURL, EventSchemaOptions{})
	reservationFor.Context = ""
	return ReservationActionSchema{
		Context: schemaContext,
		Type:    "ReservationAction",
		Target: EventReservationSchema{
			Type:           "EventReservation",
			ReservationFor: reservationFor,
		},
		Object: TicketSchema{
			Type: "Ticket",
			Name: "Ticket for " + event.Title,
		},
	}
}

// buildListedEventSchema is the simplified Event used inside an ItemList:
// no organizer, no street address.
func buildListedEventSchema(event *domain.Event, locale i18n.Locale, baseURL string) EventSchema {
	return EventSchema{
		Type:        "Event",
		Name:        event.Title,
		Description: event.Description,
		StartDate:   event.Date.Format(time.RFC3339),
		EndDate:     eventEndDate(event),
		Location: PlaceSchema{
			Type: "Place",
			Name: event.Location.Venue,
			Address: PostalAddress{
				Type:            "PostalAddress",
				AddressLocality: event.Location.City,
				AddressRegion:   event.Location.State,
				AddressCountry:  event.Location.Country,
			},
		},
		Image: event.ImageURL,
		Offers: OfferSchema{
			Type:          "Offer",
			Price:         event.Price.SchemaValue(),
			PriceCurrency: "USD",
			URL:           fmt.Sprintf("%s/%s/events/%s/book", baseURL, locale, event.Slug),
		},
	}
}

// CollectionPageOptions names the listing page a collection schema describes.
type CollectionPageOptions struct {
	Name        string
	Description string
	URL         string
	MaxItems    int
}

// BuildCollectionPageSchema builds a CollectionPage over an event listing.
// Total is the filtered total, which may exceed the listed events.
func BuildCollectionPageSchema(events []*domain.Event, total int, locale i18n.Locale, baseURL string, opts CollectionPageOptions) CollectionPageSchema {
	maxItems := opts.MaxItems
	if maxItems <= 0 {
		maxItems = collectionItemListCap
	}
	if len(events) > maxItems {
		events = events[:maxItems]
	}
	items := make([]ListItemSchema, 0, len(events))
	for i, e := range events {
		items = append(items, ListItemSchema{
			Type:     "ListItem",
			Position: i + 1,
			Item:     buildListedEventSchema(e, locale, baseURL),
		})
	}
	return CollectionPageSchema{
		Context:     schemaContext,
		Type:        "CollectionPage",
		Name:        opts.Name,
		Description: opts.Description,
		URL:         opts.URL,
		MainEntity: ItemListSchema{
			Type:            "ItemList",
			NumberOfItems:   total,
			ItemListElement: items,
		},
	}
}

// BuildTicketSchema builds a Ticket from an issued ticket.
func BuildTicketSchema(ticket *domain.Ticket) TicketSchema {
	return TicketSchema{
		Type:        "Ticket",
		Name:        "Ticket for " + ticket.EventTitle,
		Description: fmt.Sprintf("Ticket for %s on %s", ticket.EventTitle, ticket.EventDate.Format("2006-01-02")),
	}
}

// BuildTicketsCollectionPageSchema builds a CollectionPage over a ticket listing.
func BuildTicketsCollectionPageSchema(tickets []*domain.Ticket, opts CollectionPageOptions) CollectionPageSchema {
	maxItems := opts.MaxItems
	if maxItems <= 0 {
		maxItems = collectionItemListCap
	}
	total := len(tickets)
	if len(tickets) > maxItems {
		tickets = tickets[:maxItems]
	}
	items := make([]ListItemSchema, 0, len(tickets))
	for i, t := range tickets {
		items = append(items, ListItemSchema{
			Type:     "ListItem",
			Position: i + 1,
			Item:     BuildTicketSchema(t),
		})
	}
	return CollectionPageSchema{
		Context:     schemaContext,
		Type:        "CollectionPage",
		Name:        opts.Name,
		Description: opts.Description,
		URL:         opts.URL,
		MainEntity: ItemListSchema{
			Type:            "ItemList",
			NumberOfItems:   total,
			ItemListElement: items,
		},
	}
}

func eventEndDate(event *domain.Event) string {
	if event.EndDate != nil {
		return event.EndDate.Format(time.RFC3339)
	}
	return event.Date.Format(time.RFC3339)
}
