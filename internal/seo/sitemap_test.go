package seo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsplatform/internal/domain"
)

func TestBuildSitemap(t *testing.T) {
	events := []*domain.Event{
		{Slug: "tech-summit-2024", CreatedAt: time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)},
		{Slug: "jazz-night-downtown", CreatedAt: time.Date(2024, 10, 20, 10, 0, 0, 0, time.UTC)},
	}
	now := time.Date(2024, 11, 25, 12, 0, 0, 0, time.UTC)

	entries := BuildSitemap(events, testBaseURL, now)

	// 2 locales x (2 static routes + 2 routes per event).
	require.Len(t, entries, 2*2+2*2*2)

	locs := make(map[string]SitemapEntry, len(entries))
	for _, e := range entries {
		locs[e.Loc] = e
	}

	listing := locs[testBaseURL+"/en/events"]
	assert.Equal(t, "daily", listing.ChangeFreq)
	assert.Equal(t, 1.0, listing.Priority)
	assert.Equal(t, "2024-11-25", listing.LastMod)

	tickets := locs[testBaseURL+"/ar/tickets"]
	assert.Equal(t, "weekly", tickets.ChangeFreq)
	assert.Equal(t, 0.5, tickets.Priority)

	detail := locs[testBaseURL+"/en/events/tech-summit-2024"]
	assert.Equal(t, "weekly", detail.ChangeFreq)
	assert.Equal(t, 0.9, detail.Priority)
	assert.Equal(t, "2024-10-01", detail.LastMod)

	booking := locs[testBaseURL+"/ar/events/jazz-night-downtown/book"]
	assert.Equal(t, "monthly", booking.ChangeFreq)
	assert.Equal(t, 0.7, booking.Priority)
}

func TestWriteSitemapXML(t *testing.T) {
	entries := BuildSitemap([]*domain.Event{
		{Slug: "tech-summit-2024", CreatedAt: time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)},
	}, testBaseURL, time.Date(2024, 11, 25, 12, 0, 0, 0, time.UTC))

	var b strings.Builder
	require.NoError(t, WriteSitemapXML(&b, entries))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>"+testBaseURL+"/en/events/tech-summit-2024</loc>")
	assert.Contains(t, out, "<changefreq>daily</changefreq>")
}

func TestBuildRobotsTxt(t *testing.T) {
	out := BuildRobotsTxt(testBaseURL)

	assert.Contains(t, out, "User-agent: *")
	assert.Contains(t, out, "Allow: /")
	assert.Contains(t, out, "Disallow: /api/")
	assert.Contains(t, out, "Disallow: /en/tickets")
	assert.Contains(t, out, "Disallow: /ar/tickets")
	assert.Contains(t, out, "Sitemap: "+testBaseURL+"/sitemap.xml")
}
