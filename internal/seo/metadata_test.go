package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsplatform/internal/i18n"
)

const testBaseURL = "https://events.example.com"

func TestBuildPageMetadata_Defaults(t *testing.T) {
	md := BuildPageMetadata(testBaseURL, MetadataOptions{
		Title:       "Events",
		Description: "Browse events",
		Locale:      i18n.LocaleEN,
		Path:        "/en/events",
	})

	assert.Equal(t, "Events", md.Title)
	assert.Equal(t, testBaseURL+"/en/events", md.Canonical)
	assert.Equal(t, "website", md.OpenGraph.Type)
	assert.Equal(t, "en_US", md.OpenGraph.Locale)
	assert.Equal(t, "Events Platform", md.OpenGraph.SiteName)
	assert.Nil(t, md.OpenGraph.Image)
	assert.Equal(t, "summary_large_image", md.Twitter.Card)
	assert.Equal(t, "@EventsPlatform", md.Twitter.Site)
	assert.Contains(t, md.Robots, "index, follow")
	assert.NotContains(t, md.Robots, "noindex")
}

func TestBuildPageMetadata_Alternates(t *testing.T) {
	md := BuildPageMetadata(testBaseURL, MetadataOptions{
		Title:  "Event",
		Locale: i18n.LocaleAR,
		Path:   "/ar/events/tech-summit-2024",
	})

	require.Len(t, md.Alternates, 2)
	assert.Equal(t, i18n.LocaleEN, md.Alternates[0].Locale)
	assert.Equal(t, testBaseURL+"/en/events/tech-summit-2024", md.Alternates[0].URL)
	assert.Equal(t, i18n.LocaleAR, md.Alternates[1].Locale)
	assert.Equal(t, testBaseURL+"/ar/events/tech-summit-2024", md.Alternates[1].URL)
	assert.Equal(t, "ar_SA", md.OpenGraph.Locale)
}

func TestBuildPageMetadata_RootPathAlternates(t *testing.T) {
	md := BuildPageMetadata(testBaseURL, MetadataOptions{
		Title:  "Home",
		Locale: i18n.LocaleEN,
		Path:   "/en",
	})

	require.Len(t, md.Alternates, 2)
	assert.Equal(t, testBaseURL+"/en", md.Alternates[0].URL)
	assert.Equal(t, testBaseURL+"/ar", md.Alternates[1].URL)
}

func TestBuildPageMetadata_Image(t *testing.T) {
	md := BuildPageMetadata(testBaseURL, MetadataOptions{
		Title:    "Event",
		Locale:   i18n.LocaleEN,
		Path:     "/en/events/x",
		ImageURL: "/images/events/x.jpg",
	})

	require.NotNil(t, md.OpenGraph.Image)
	assert.Equal(t, testBaseURL+"/images/events/x.jpg", md.OpenGraph.Image.URL)
	assert.Equal(t, 1200, md.OpenGraph.Image.Width)
	assert.Equal(t, 630, md.OpenGraph.Image.Height)
	assert.Equal(t, "Event", md.OpenGraph.Image.Alt, "alt falls back to the title")
	assert.Equal(t, md.OpenGraph.Image.URL, md.Twitter.Image)

	md = BuildPageMetadata(testBaseURL, MetadataOptions{
		Title:    "Event",
		Locale:   i18n.LocaleEN,
		Path:     "/en/events/x",
		ImageURL: "https://cdn.example.com/x.jpg",
	})
	assert.Equal(t, "https://cdn.example.com/x.jpg", md.OpenGraph.Image.URL, "absolute URLs pass through")
}

func TestBuildPageMetadata_NoIndex(t *testing.T) {
	md := BuildPageMetadata(testBaseURL, MetadataOptions{
		Title:   "My Tickets",
		Locale:  i18n.LocaleEN,
		Path:    "/en/tickets",
		NoIndex: true,
	})

	assert.Equal(t, "noindex, follow", md.Robots)
}

func TestBuildPageMetadata_Keywords(t *testing.T) {
	md := BuildPageMetadata(testBaseURL, MetadataOptions{
		Title:    "Events",
		Locale:   i18n.LocaleEN,
		Path:     "/en/events",
		Keywords: []string{"events", "", "tickets", "  "},
	})

	assert.Equal(t, "events, tickets", md.Keywords)
}
