package web

import "eventsplatform/internal/i18n"

// labelSet holds the translated UI strings for one locale. Page text is
// data-driven so templates contain no locale branching.
type labelSet struct {
	SiteName         string
	Events           string
	FeaturedEvents   string
	MyTickets        string
	SearchLabel      string
	AllCategories    string
	AllLocations     string
	DateFrom         string
	DateTo           string
	FeaturedOnly     string
	Apply            string
	BookNow          string
	SoldOut          string
	Attendees        string
	Organizer        string
	Previous         string
	Next             string
	NoEvents         string
	NoTickets        string
	Name             string
	Email            string
	Mobile           string
	ConfirmBooking   string
	BookingConfirmed string
	TicketID         string
	BookedOn         string
	PrintTicket      string
	Venue            string
	Date             string
	Time             string
	Price            string
	Event            string
	Attendee         string
}

var labels = map[i18n.Locale]labelSet{
	i18n.LocaleEN: {
		SiteName:         "Events Platform",
		Events:           "Events",
		FeaturedEvents:   "Featured Events",
		MyTickets:        "My Tickets",
		SearchLabel:      "Search events",
		AllCategories:    "All categories",
		AllLocations:     "All locations",
		DateFrom:         "From",
		DateTo:           "To",
		FeaturedOnly:     "Featured only",
		Apply:            "Apply",
		BookNow:          "Book Now",
		SoldOut:          "Sold Out",
		Attendees:        "attendees",
		Organizer:        "Organizer",
		Previous:         "Previous",
		Next:             "Next",
		NoEvents:         "No events match your filters.",
		NoTickets:        "You have no tickets yet.",
		Name:             "Full name",
		Email:            "Email",
		Mobile:           "Mobile number",
		ConfirmBooking:   "Confirm Booking",
		BookingConfirmed: "Booking confirmed!",
		TicketID:         "Ticket ID",
		BookedOn:         "Booked on",
		PrintTicket:      "Print Ticket",
		Venue:            "Venue",
		Date:             "Date",
		Time:             "Time",
		Price:            "Price",
		Event:            "Event",
		Attendee:         "Attendee",
	},
	i18n.LocaleAR: {
		SiteName:         "منصة الفعاليات",
		Events:           "الفعاليات",
		FeaturedEvents:   "فعاليات مميزة",
		MyTickets:        "تذاكري",
		SearchLabel:      "ابحث عن فعالية",
		AllCategories:    "كل الفئات",
		AllLocations:     "كل المواقع",
		DateFrom:         "من",
		DateTo:           "إلى",
		FeaturedOnly:     "المميزة فقط",
		Apply:            "تطبيق",
		BookNow:          "احجز الآن",
		SoldOut:          "نفدت التذاكر",
		Attendees:        "الحضور",
		Organizer:        "المنظم",
		Previous:         "السابق",
		Next:             "التالي",
		NoEvents:         "لا توجد فعاليات مطابقة.",
		NoTickets:        "لا توجد لديك تذاكر بعد.",
		Name:             "الاسم الكامل",
		Email:            "البريد الإلكتروني",
		Mobile:           "رقم الجوال",
		ConfirmBooking:   "تأكيد الحجز",
		BookingConfirmed: "تم تأكيد الحجز!",
		TicketID:         "رقم التذكرة",
		BookedOn:         "تاريخ الحجز",
		PrintTicket:      "طباعة التذكرة",
		Venue:            "المكان",
		Date:             "التاريخ",
		Time:             "الوقت",
		Price:            "السعر",
		Event:            "الفعالية",
		Attendee:         "الحاضر",
	},
}

func labelsFor(locale i18n.Locale) labelSet {
	if l, ok := labels[locale]; ok {
		return l
	}
	return labels[i18n.DefaultLocale]
}
