package middleware

import (
	"context"
	"net/http"
	"strings"

	"eventsplatform/internal/i18n"
)

type contextKey string

const localeKey contextKey = "locale"

// LocaleCookieName is the cookie carrying the visitor's locale preference.
const LocaleCookieName = "locale"

// SetLocale returns a context with the resolved locale set.
func SetLocale(ctx context.Context, locale i18n.Locale) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

// LocaleFromContext returns the resolved locale from the context, if present.
func LocaleFromContext(ctx context.Context) (i18n.Locale, bool) {
	l, ok := ctx.Value(localeKey).(i18n.Locale)
	return l, ok
}

// localeExemptPrefixes are paths served without a locale segment.
var localeExemptPrefixes = []string{
	"/api/",
	"/swagger/",
	"/static/",
	"/images/",
}

// localeExemptPaths are exact paths served without a locale segment.
var localeExemptPaths = []string{
	"/sitemap.xml",
	"/robots.txt",
	"/favicon.ico",
	"/healthz",
}

func localeExempt(path string) bool {
	for _, p := range localeExemptPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	for _, p := range localeExemptPaths {
		if path == p {
			return true
		}
	}
	return false
}

// pathLocale extracts a supported locale from the first path segment.
func pathLocale(path string) (i18n.Locale, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(trimmed, "/")
	return i18n.Parse(segment)
}

// resolveLocale determines the visitor's locale: path segment first, then
// cookie, then Accept-Language, then the configured default.
func resolveLocale(r *http.Request, defaultLocale i18n.Locale) i18n.Locale {
	if l, ok := pathLocale(r.URL.Path); ok {
		return l
	}
	if c, err := r.Cookie(LocaleCookieName); err == nil {
		if l, ok := i18n.Parse(c.Value); ok {
			return l
		}
	}
	if l, ok := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return l
	}
	return defaultLocale
}

// Locale redirects page requests lacking a locale prefix to the
// locale-prefixed path (preserving the query string) and tags all other page
// requests with the resolved locale in the request context and an X-Locale
// response header. API, asset, and SEO paths pass through untouched.
func Locale(defaultLocale i18n.Locale, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if localeExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		locale := resolveLocale(r, defaultLocale)

		if _, ok := pathLocale(r.URL.Path); !ok {
			target := "/" + string(locale)
			if r.URL.Path != "/" {
				target += r.URL.Path
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		w.Header().Set("X-Locale", string(locale))
		next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), locale)))
	})
}
