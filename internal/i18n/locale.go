package i18n

import (
	"golang.org/x/text/language"
)

// Locale is a supported UI locale code.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// Locales lists the supported locales in preference order.
var Locales = []Locale{LocaleEN, LocaleAR}

// DefaultLocale is used when no preference can be resolved.
const DefaultLocale = LocaleEN

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// Parse returns the locale for the given code, reporting whether it is supported.
func Parse(code string) (Locale, bool) {
	for _, l := range Locales {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

// MatchAcceptLanguage resolves a locale from an Accept-Language header value.
// Returns false when the header is empty or matches no supported locale well
// enough to be meaningful.
func MatchAcceptLanguage(header string) (Locale, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return Locales[index], true
}

// IsRTL reports whether the locale is written right to left.
func (l Locale) IsRTL() bool {
	return l == LocaleAR
}

// DisplayName returns the locale's self-name for language switchers.
func (l Locale) DisplayName() string {
	switch l {
	case LocaleAR:
		return "العربية"
	default:
		return "English"
	}
}

// OpenGraphLocale returns the og:locale value for the locale.
func (l Locale) OpenGraphLocale() string {
	if l == LocaleAR {
		return "ar_SA"
	}
	return "en_US"
}
