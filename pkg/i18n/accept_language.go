package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents abuse through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage picks the best supported locale for an Accept-Language
// header. Matching uses golang.org/x/text semantics, so regional variants
// collapse onto their base language ("en-US" matches a supported "en").
// Returns the first supported locale when the header is empty, oversized, or
// matches nothing, and an empty string when no locales are supported.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
func MatchAcceptLanguage(header string, supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	if header == "" || len(header) > maxAcceptLanguageLength {
		return supported[0]
	}

	tags := make([]language.Tag, 0, len(supported))
	locales := make([]string, 0, len(supported))
	for _, locale := range supported {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locales = append(locales, locale)
	}
	if len(tags) == 0 {
		return supported[0]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return supported[0]
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return supported[0]
	}
	return locales[index]
}
