package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"eventsplatform/internal/domain"
)

// featuredLimit caps the featured-events listing.
const featuredLimit = 3

type eventService struct {
	eventRepo       domain.EventRepository
	defaultPageSize int
}

// NewEventService creates an EventService over the given repository.
// defaultPageSize is used when pagination does not specify a limit.
func NewEventService(eventRepo domain.EventRepository, defaultPageSize int) domain.EventService {
	if defaultPageSize <= 0 {
		defaultPageSize = 12
	}
	return &eventService{
		eventRepo:       eventRepo,
		defaultPageSize: defaultPageSize,
	}
}

// ListEvents filters, sorts, and paginates the event store. Filtering is
// conjunctive across all supplied dimensions; results are sorted ascending by
// date (stable for ties) before slicing.
func (s *eventService) ListEvents(ctx context.Context, filters domain.EventFilters, pagination domain.PaginationParams) (*domain.EventPage, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	filtered := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if matchesFilters(e, filters) {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	page := pagination.Page
	if page < 1 {
		page = 1
	}
	limit := pagination.Limit
	if limit <= 0 {
		limit = s.defaultPageSize
	}

	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &domain.EventPage{
		Events:     filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func matchesFilters(e *domain.Event, f domain.EventFilters) bool {
	if search := strings.TrimSpace(f.Search); search != "" {
		if !strings.Contains(strings.ToLower(e.Title), strings.ToLower(search)) {
			return false
		}
	}
	if category := strings.TrimSpace(f.Category); category != "" {
		if e.Category != category {
			return false
		}
	}
	if location := strings.TrimSpace(f.Location); location != "" {
		needle := strings.ToLower(location)
		cityCountry := strings.ToLower(e.Location.CityCountry())
		city := strings.ToLower(e.Location.City)
		country := strings.ToLower(e.Location.Country)
		if !strings.Contains(cityCountry, needle) &&
			!strings.Contains(city, needle) &&
			!strings.Contains(country, needle) {
			return false
		}
	}
	if f.DateFrom != nil && e.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && e.Date.After(*f.DateTo) {
		return false
	}
	if f.Featured != nil && e.Featured != *f.Featured {
		return false
	}
	return true
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

// FeaturedEvents returns up to featuredLimit featured events in seed order.
func (s *eventService) FeaturedEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	featured := make([]*domain.Event, 0, featuredLimit)
	for _, e := range events {
		if !e.Featured {
			continue
		}
		featured = append(featured, e)
		if len(featured) == featuredLimit {
			break
		}
	}
	return featured, nil
}

// Categories returns the distinct category values, sorted ascending.
func (s *eventService) Categories(ctx context.Context) ([]string, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return distinctSorted(events, func(e *domain.Event) string { return e.Category }), nil
}

// Locations returns the distinct "{city}, {country}" values, sorted ascending.
func (s *eventService) Locations(ctx context.Context) ([]string, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return distinctSorted(events, func(e *domain.Event) string { return e.Location.CityCountry() }), nil
}

func distinctSorted(events []*domain.Event, key func(*domain.Event) string) []string {
	seen := make(map[string]struct{}, len(events))
	out := make([]string, 0, len(events))
	for _, e := range events {
		k := key(e)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
