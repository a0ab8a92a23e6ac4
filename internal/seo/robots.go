package seo

import (
	"fmt"
	"strings"

	"eventsplatform/internal/i18n"
)

// BuildRobotsTxt renders robots.txt: everything is crawlable except the API
// and the per-locale tickets pages (user-specific content).
func BuildRobotsTxt(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	for _, locale := range i18n.Locales {
		fmt.Fprintf(&b, "Disallow: /%s/tickets\n", locale)
	}
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", baseURL)
	return b.String()
}
