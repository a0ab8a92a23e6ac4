package helpers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventsplatform/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage = 1
	MaxLimit    = 100
)

// ParsePagination reads page and limit from the request query string,
// clamps them to valid ranges, and returns domain.PaginationParams.
// An invalid or missing page falls back to DefaultPage; an invalid or
// missing limit is left at zero so the service applies its configured
// page size.
func ParsePagination(r *http.Request) domain.PaginationParams {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}
	return domain.PaginationParams{Page: page, Limit: limit}
}

// ParseEventFilters reads the event filter dimensions from the query string.
// Malformed values are treated as absent rather than rejected.
func ParseEventFilters(r *http.Request) domain.EventFilters {
	q := r.URL.Query()
	filters := domain.EventFilters{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		Location: strings.TrimSpace(q.Get("location")),
	}
	if t, ok := parseDate(q.Get("date_from")); ok {
		filters.DateFrom = &t
	}
	if t, ok := parseDate(q.Get("date_to")); ok {
		filters.DateTo = &t
	}
	if s := q.Get("featured"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			filters.Featured = &v
		}
	}
	return filters
}

// parseDate accepts "2006-01-02" or RFC 3339.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
