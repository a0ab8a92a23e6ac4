package i18n

import (
	"fmt"
	"strconv"
	"time"

	"eventsplatform/internal/domain"
)

// localeFormat holds the per-locale formatting rules as data: calendar names,
// day-period markers, and price labels. Adding a locale means adding a table
// entry, not a branch.
type localeFormat struct {
	months       [12]string
	weekdays     [7]string // indexed by time.Weekday (Sunday first)
	am, pm       string
	dayFirst     bool // "15 December 2024" vs "December 15, 2024"
	freeLabel    string
	pricePattern string // fmt pattern with %s for the amount
}

var formats = map[Locale]localeFormat{
	LocaleEN: {
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		weekdays: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		am: "AM", pm: "PM",
		dayFirst:     false,
		freeLabel:    "Free",
		pricePattern: "$%s",
	},
	LocaleAR: {
		months: [12]string{
			"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
			"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
		},
		weekdays: [7]string{
			"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
		},
		am: "ص", pm: "م",
		dayFirst:     true,
		freeLabel:    "مجاني",
		pricePattern: "%s $",
	},
}

func formatFor(locale Locale) localeFormat {
	if f, ok := formats[locale]; ok {
		return f
	}
	return formats[DefaultLocale]
}

// FormatLongDate renders a date as "December 15, 2024" (or the locale's
// day-first equivalent with localized month names).
func FormatLongDate(t time.Time, locale Locale) string {
	f := formatFor(locale)
	month := f.months[int(t.Month())-1]
	if f.dayFirst {
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	}
	return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
}

// FormatWeekday renders the localized weekday name.
func FormatWeekday(t time.Time, locale Locale) string {
	return formatFor(locale).weekdays[int(t.Weekday())]
}

// FormatTime renders a 12-hour clock time with the locale's day-period marker.
func FormatTime(t time.Time, locale Locale) string {
	f := formatFor(locale)
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	marker := f.am
	if t.Hour() >= 12 {
		marker = f.pm
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), marker)
}

// FormatPrice renders a price with the locale's free label and currency pattern.
func FormatPrice(p domain.Price, locale Locale) string {
	f := formatFor(locale)
	if p.Free {
		return f.freeLabel
	}
	amount := strconv.FormatFloat(p.Amount, 'f', -1, 64)
	return fmt.Sprintf(f.pricePattern, amount)
}
