package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsplatform/internal/domain"
)

func testEvents() []*domain.Event {
	return []*domain.Event{
		{ID: "1", Slug: "first", Title: "First", AttendeeCount: 0, MaxAttendees: 2},
		{ID: "2", Slug: "second", Title: "Second", AttendeeCount: 5, MaxAttendees: 5},
	}
}

func TestEventRepo_List_PreservesSeedOrder(t *testing.T) {
	repo := NewEventRepo(testEvents())

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "first", events[0].Slug)
	assert.Equal(t, "second", events[1].Slug)
}

func TestEventRepo_List_ReturnsCopies(t *testing.T) {
	repo := NewEventRepo(testEvents())

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	events[0].Title = "mutated"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "First", again[0].Title)
}

func TestEventRepo_GetBySlug(t *testing.T) {
	repo := NewEventRepo(testEvents())

	e, err := repo.GetBySlug(context.Background(), "second")
	require.NoError(t, err)
	assert.Equal(t, "2", e.ID)

	_, err = repo.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_ReserveSeat(t *testing.T) {
	repo := NewEventRepo(testEvents())
	ctx := context.Background()

	e, err := repo.ReserveSeat(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, e.AttendeeCount)

	e, err = repo.ReserveSeat(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, e.AttendeeCount)

	// Now at capacity.
	_, err = repo.ReserveSeat(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestEventRepo_ReserveSeat_Full(t *testing.T) {
	repo := NewEventRepo(testEvents())

	_, err := repo.ReserveSeat(context.Background(), "2")
	assert.ErrorIs(t, err, domain.ErrEventFull)

	e, err := repo.GetBySlug(context.Background(), "second")
	require.NoError(t, err)
	assert.Equal(t, 5, e.AttendeeCount)
}

func TestEventRepo_ReserveSeat_UnknownEvent(t *testing.T) {
	repo := NewEventRepo(testEvents())

	_, err := repo.ReserveSeat(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_DuplicateSlugIgnored(t *testing.T) {
	events := append(testEvents(), &domain.Event{ID: "3", Slug: "first", Title: "Duplicate"})
	repo := NewEventRepo(events)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	e, err := repo.GetBySlug(context.Background(), "first")
	require.NoError(t, err)
	assert.Equal(t, "First", e.Title)
}

func TestSeedEvents_Invariants(t *testing.T) {
	slugs := make(map[string]struct{})
	for _, e := range SeedEvents() {
		_, dup := slugs[e.Slug]
		require.False(t, dup, "duplicate slug %s", e.Slug)
		slugs[e.Slug] = struct{}{}
		assert.LessOrEqual(t, e.AttendeeCount, e.MaxAttendees, "event %s over capacity", e.Slug)
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Category)
		assert.False(t, e.Date.IsZero())
	}
}
