package memory

import (
	"time"

	"eventsplatform/internal/domain"
)

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

func atPtr(value string) *time.Time {
	t := at(value)
	return &t
}

// SeedEvents returns the static event dataset the platform serves.
func SeedEvents() []*domain.Event {
	return []*domain.Event{
		{
			ID:              "1",
			Slug:            "tech-summit-2024",
			Title:           "Tech Summit 2024",
			Description:     "The region's largest gathering of technology leaders and innovators.",
			LongDescription: "Join two days of keynotes, hands-on workshops, and networking with engineers, founders, and investors from across the region. Tracks cover AI, cloud infrastructure, and product engineering.",
			Date:            at("2024-12-15T10:00:00"),
			EndDate:         atPtr("2024-12-16T18:00:00"),
			Location:        domain.Location{Venue: "Convention Center", City: "Dubai", State: "Dubai", Country: "United Arab Emirates"},
			Category:        "Technology",
			Tags:            []string{"conference", "ai", "networking"},
			ImageURL:        "/images/events/tech-summit.jpg",
			Price:           domain.PriceOf(299),
			AttendeeCount:   87,
			MaxAttendees:    100,
			Organizer:       domain.Organizer{Name: "TechEvents Co", Avatar: "/images/organizers/techevents.png"},
			Featured:        true,
			CreatedAt:       at("2024-10-01T09:00:00"),
		},
		{
			ID:              "2",
			Slug:            "music-festival-summer",
			Title:           "Summer Music Festival",
			Description:     "An open-air festival with headline acts from around the world.",
			LongDescription: "Three stages, twenty artists, food trucks, and an evening fireworks show. Gates open at four; headliners start after sunset.",
			Date:            at("2024-12-22T16:00:00"),
			Location:        domain.Location{Venue: "City Park", City: "Riyadh", State: "Riyadh", Country: "Saudi Arabia"},
			Category:        "Music",
			Tags:            []string{"festival", "live", "outdoor"},
			ImageURL:        "/images/events/music-festival.jpg",
			Price:           domain.PriceOf(150),
			AttendeeCount:   2430,
			MaxAttendees:    5000,
			Organizer:       domain.Organizer{Name: "Live Nights", Avatar: "/images/organizers/livenights.png"},
			Featured:        true,
			CreatedAt:       at("2024-09-15T12:00:00"),
		},
		{
			ID:              "3",
			Slug:            "art-exhibition-modern",
			Title:           "Modern Art Exhibition",
			Description:     "A curated collection of contemporary works from emerging artists.",
			LongDescription: "The gallery's winter exhibition features painting, sculpture, and digital installations from thirty artists across the Middle East and North Africa. Guided tours run twice daily.",
			Date:            at("2024-12-08T09:00:00"),
			EndDate:         atPtr("2024-12-28T17:00:00"),
			Location:        domain.Location{Venue: "Art Gallery Museum", City: "Cairo", State: "Cairo", Country: "Egypt"},
			Category:        "Art",
			Tags:            []string{"exhibition", "gallery", "free"},
			ImageURL:        "/images/events/art-exhibition.jpg",
			Price:           domain.FreePrice(),
			AttendeeCount:   120,
			MaxAttendees:    400,
			Organizer:       domain.Organizer{Name: "Cairo Arts Council", Avatar: "/images/organizers/cairoarts.png"},
			Featured:        false,
			CreatedAt:       at("2024-09-30T08:30:00"),
		},
		{
			ID:              "4",
			Slug:            "jazz-night-downtown",
			Title:           "Jazz Night Downtown",
			Description:     "An intimate evening of live jazz in the old town.",
			LongDescription: "A quartet of touring musicians plays two sets of standards and originals. Doors at seven, first set at eight. Seating is unreserved.",
			Date:            at("2024-12-12T19:30:00"),
			Location:        domain.Location{Venue: "Blue Door Club", City: "Dubai", State: "Dubai", Country: "United Arab Emirates"},
			Category:        "Music",
			Tags:            []string{"jazz", "live", "indoor"},
			ImageURL:        "/images/events/jazz-night.jpg",
			Price:           domain.PriceOf(75),
			AttendeeCount:   64,
			MaxAttendees:    80,
			Organizer:       domain.Organizer{Name: "Live Nights", Avatar: "/images/organizers/livenights.png"},
			Featured:        false,
			CreatedAt:       at("2024-10-20T10:00:00"),
		},
		{
			ID:              "5",
			Slug:            "startup-pitch-finals",
			Title:           "Startup Pitch Finals",
			Description:     "Twelve finalists pitch to a panel of regional investors.",
			LongDescription: "The closing round of this year's accelerator program. Each team gets eight minutes on stage plus questions; winners are announced the same evening.",
			Date:            at("2024-12-18T14:00:00"),
			Location:        domain.Location{Venue: "Innovation Hub", City: "Riyadh", State: "Riyadh", Country: "Saudi Arabia"},
			Category:        "Business",
			Tags:            []string{"startups", "pitching", "investors"},
			ImageURL:        "/images/events/pitch-finals.jpg",
			Price:           domain.FreePrice(),
			AttendeeCount:   250,
			MaxAttendees:    250,
			Organizer:       domain.Organizer{Name: "Gulf Ventures", Avatar: "/images/organizers/gulfventures.png"},
			Featured:        true,
			CreatedAt:       at("2024-10-05T16:45:00"),
		},
		{
			ID:              "6",
			Slug:            "marathon-city-2025",
			Title:           "City Marathon 2025",
			Description:     "The annual city marathon, half marathon, and 10K.",
			LongDescription: "A flat, fast course through the corniche and old town. Water stations every three kilometers, pacers for all major finish times, and a finisher medal for every runner.",
			Date:            at("2025-01-10T06:00:00"),
			Location:        domain.Location{Venue: "Corniche Start Line", City: "Doha", State: "Doha", Country: "Qatar"},
			Category:        "Sports",
			Tags:            []string{"running", "marathon", "outdoor"},
			ImageURL:        "/images/events/marathon.jpg",
			Price:           domain.PriceOf(40),
			AttendeeCount:   5120,
			MaxAttendees:    10000,
			Organizer:       domain.Organizer{Name: "Doha Runners", Avatar: "/images/organizers/doharunners.png"},
			Featured:        true,
			CreatedAt:       at("2024-08-12T11:00:00"),
		},
		{
			ID:              "7",
			Slug:            "food-truck-weekend",
			Title:           "Food Truck Weekend",
			Description:     "Forty food trucks, live cooking, and family activities.",
			LongDescription: "A weekend street-food market by the waterfront with cuisines from fifteen countries, cooking demonstrations on the main stage, and a kids' corner.",
			Date:            at("2024-12-27T12:00:00"),
			EndDate:         atPtr("2024-12-29T22:00:00"),
			Location:        domain.Location{Venue: "Waterfront Market", City: "Cairo", State: "Cairo", Country: "Egypt"},
			Category:        "Food",
			Tags:            []string{"street-food", "market", "family"},
			ImageURL:        "/images/events/food-trucks.jpg",
			Price:           domain.PriceOf(10),
			AttendeeCount:   890,
			MaxAttendees:    3000,
			Organizer:       domain.Organizer{Name: "Cairo Arts Council", Avatar: "/images/organizers/cairoarts.png"},
			Featured:        false,
			CreatedAt:       at("2024-11-01T09:15:00"),
		},
		{
			ID:              "8",
			Slug:            "photography-workshop",
			Title:           "Street Photography Workshop",
			Description:     "A full-day workshop on composition and available light.",
			LongDescription: "Morning theory session followed by a guided photo walk through the souq and an afternoon critique. Bring any camera; loaner bodies are available.",
			Date:            at("2025-01-05T09:00:00"),
			Location:        domain.Location{Venue: "Media Arts Studio", City: "Dubai", State: "Dubai", Country: "United Arab Emirates"},
			Category:        "Art",
			Tags:            []string{"workshop", "photography"},
			ImageURL:        "/images/events/photo-workshop.jpg",
			Price:           domain.PriceOf(120),
			AttendeeCount:   14,
			MaxAttendees:    20,
			Organizer:       domain.Organizer{Name: "Media Arts Studio", Avatar: "/images/organizers/mediaarts.png"},
			Featured:        false,
			CreatedAt:       at("2024-11-18T13:30:00"),
		},
	}
}

// SeedTickets returns the demo tickets visible before any booking is made.
func SeedTickets() []*domain.Ticket {
	return []*domain.Ticket{
		{
			ID:             "ticket-1",
			EventID:        "1",
			EventSlug:      "tech-summit-2024",
			EventTitle:     "Tech Summit 2024",
			EventDate:      at("2024-12-15T10:00:00"),
			EventLocation:  domain.Location{Venue: "Convention Center", City: "Dubai", State: "Dubai", Country: "United Arab Emirates"},
			AttendeeName:   "Ahmed Ali",
			AttendeeEmail:  "ahmed.ali@example.com",
			AttendeeMobile: "+971501234567",
			BookingDate:    at("2024-11-01T14:30:00"),
			Price:          domain.PriceOf(299),
		},
		{
			ID:             "ticket-2",
			EventID:        "2",
			EventSlug:      "music-festival-summer",
			EventTitle:     "Summer Music Festival",
			EventDate:      at("2024-12-22T16:00:00"),
			EventLocation:  domain.Location{Venue: "City Park", City: "Riyadh", State: "Riyadh", Country: "Saudi Arabia"},
			AttendeeName:   "Ahmed Ali",
			AttendeeEmail:  "ahmed.ali@example.com",
			AttendeeMobile: "+971501234567",
			BookingDate:    at("2024-11-05T10:15:00"),
			Price:          domain.PriceOf(150),
		},
		{
			ID:             "ticket-3",
			EventID:        "3",
			EventSlug:      "art-exhibition-modern",
			EventTitle:     "Modern Art Exhibition",
			EventDate:      at("2024-12-08T09:00:00"),
			EventLocation:  domain.Location{Venue: "Art Gallery Museum", City: "Cairo", State: "Cairo", Country: "Egypt"},
			AttendeeName:   "Ahmed Ali",
			AttendeeEmail:  "ahmed.ali@example.com",
			AttendeeMobile: "+971501234567",
			BookingDate:    at("2024-11-10T11:20:00"),
			Price:          domain.FreePrice(),
		},
	}
}
