package seo

import (
	"regexp"
	"strings"

	"eventsplatform/internal/i18n"
)

const defaultSiteName = "Events Platform"

// localePrefix strips a leading /en or /ar segment from a path.
var localePrefix = regexp.MustCompile(`^/(en|ar)(/|$)`)

// MetadataOptions are the inputs for building page metadata.
type MetadataOptions struct {
	Title       string
	Description string
	Keywords    []string
	Locale      i18n.Locale
	// Path is the locale-prefixed request path, e.g. "/en/events".
	Path        string
	ImageURL    string
	ImageAlt    string
	TwitterCard string // "summary" or "summary_large_image" (default)
	NoIndex     bool
	SiteName    string
}

// ImageMeta describes a social-sharing image.
type ImageMeta struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraphMeta holds the Open Graph fields for a page.
type OpenGraphMeta struct {
	Title       string
	Description string
	Type        string
	Locale      string
	SiteName    string
	URL         string
	Image       *ImageMeta
}

// TwitterMeta holds the Twitter card fields for a page.
type TwitterMeta struct {
	Card        string
	Title       string
	Description string
	Creator     string
	Site        string
	Image       string
}

// AlternateLink is a per-locale alternate-language link.
type AlternateLink struct {
	Locale i18n.Locale
	URL    string
}

// PageMetadata is the assembled head metadata for a server-rendered page.
type PageMetadata struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Alternates  []AlternateLink
	OpenGraph   OpenGraphMeta
	Twitter     TwitterMeta
	Robots      string
}

// BuildPageMetadata assembles page metadata against the given base URL.
// Pages are indexable unless NoIndex is set (e.g. the tickets page).
func BuildPageMetadata(baseURL string, opts MetadataOptions) PageMetadata {
	siteName := opts.SiteName
	if siteName == "" {
		siteName = defaultSiteName
	}
	card := opts.TwitterCard
	if card == "" {
		card = "summary_large_image"
	}

	canonical := absoluteURL(baseURL, opts.Path)

	imageURL := ""
	var image *ImageMeta
	if opts.ImageURL != "" {
		imageURL = absoluteURL(baseURL, opts.ImageURL)
		alt := opts.ImageAlt
		if alt == "" {
			alt = opts.Title
		}
		image = &ImageMeta{URL: imageURL, Width: 1200, Height: 630, Alt: alt}
	}

	pathWithoutLocale := localePrefix.ReplaceAllString(opts.Path, "/")
	if pathWithoutLocale == "" {
		pathWithoutLocale = "/"
	}
	alternates := make([]AlternateLink, 0, len(i18n.Locales))
	for _, l := range i18n.Locales {
		suffix := pathWithoutLocale
		if suffix == "/" {
			suffix = ""
		}
		alternates = append(alternates, AlternateLink{
			Locale: l,
			URL:    baseURL + "/" + string(l) + suffix,
		})
	}

	robots := "index, follow, max-video-preview:-1, max-image-preview:large, max-snippet:-1"
	if opts.NoIndex {
		robots = "noindex, follow"
	}

	return PageMetadata{
		Title:       opts.Title,
		Description: opts.Description,
		Keywords:    strings.Join(nonBlank(opts.Keywords), ", "),
		Canonical:   canonical,
		Alternates:  alternates,
		OpenGraph: OpenGraphMeta{
			Title:       opts.Title,
			Description: opts.Description,
			Type:        "website",
			Locale:      opts.Locale.OpenGraphLocale(),
			SiteName:    siteName,
			URL:         canonical,
			Image:       image,
		},
		Twitter: TwitterMeta{
			Card:        card,
			Title:       opts.Title,
			Description: opts.Description,
			Creator:     "@EventsPlatform",
			Site:        "@EventsPlatform",
			Image:       imageURL,
		},
		Robots: robots,
	}
}

func absoluteURL(baseURL, pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}
	return baseURL + pathOrURL
}

func nonBlank(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
