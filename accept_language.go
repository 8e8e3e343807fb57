package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds header parsing against oversized input.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best match for an Accept-Language header
// value from the available locales, honoring quality weights. It is a pure
// function over the header text; the HTTP layer calls it and carries the
// result into the request context via SetLocale. Returns the first available
// locale when the header is empty, malformed, or matches nothing, and an
// empty string when no locales are available.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := make([]language.Tag, 0, len(available))
	locales := make([]string, 0, len(available))
	for _, locale := range available {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locales = append(locales, locale)
	}
	if len(tags) == 0 {
		return available[0]
	}

	wanted, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(wanted) == 0 {
		return available[0]
	}

	_, index, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return available[0]
	}
	return locales[index]
}

// MatchLocale matches an Accept-Language header value against the
// translator's available locales.
func (t *Translator) MatchLocale(header string) string {
	return ParseAcceptLanguage(header, t.Locales())
}
