package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"eventsplatform/internal/domain"
	"eventsplatform/internal/i18n"
)

// SitemapEntry is one URL in the sitemap.
type SitemapEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   float64  `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name       `xml:"urlset"`
	Xmlns   string         `xml:"xmlns,attr"`
	URLs    []SitemapEntry `xml:"url"`
}

// BuildSitemap enumerates locale-prefixed routes: the events listing and
// tickets page per locale, then detail and booking pages per event per locale.
func BuildSitemap(events []*domain.Event, baseURL string, now time.Time) []SitemapEntry {
	entries := make([]SitemapEntry, 0, 2*len(i18n.Locales)*(len(events)+1))

	for _, locale := range i18n.Locales {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/%s/events", baseURL, locale),
			LastMod:    now.Format("2006-01-02"),
			ChangeFreq: "daily",
			Priority:   1.0,
		})
		// User-specific content, kept low priority.
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/%s/tickets", baseURL, locale),
			LastMod:    now.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.5,
		})
	}

	for _, event := range events {
		for _, locale := range i18n.Locales {
			entries = append(entries, SitemapEntry{
				Loc:        fmt.Sprintf("%s/%s/events/%s", baseURL, locale, event.Slug),
				LastMod:    event.CreatedAt.Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   0.9,
			})
			entries = append(entries, SitemapEntry{
				Loc:        fmt.Sprintf("%s/%s/events/%s/book", baseURL, locale, event.Slug),
				LastMod:    event.CreatedAt.Format("2006-01-02"),
				ChangeFreq: "monthly",
				Priority:   0.7,
			})
		}
	}

	return entries
}

// WriteSitemapXML writes the entries as a sitemaps.org urlset document.
func WriteSitemapXML(w io.Writer, entries []SitemapEntry) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  entries,
	}
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return nil
}
