// Package i18n resolves the locales supported by the landing site.
package i18n

import (
	"strings"

	"github.com/radchenko/landing/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	defaultTag    = language.MustParse(catalog.BaseLocale)
	supportedTags = []language.Tag{
		defaultTag,
		language.MustParse("en-US"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// DefaultTag returns the fallback locale.
func DefaultTag() language.Tag {
	return defaultTag
}

// SupportedTags returns the supported locales, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses value and maps it onto a supported locale. The bool is
// false when value is not a valid tag or matches no supported locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultTag, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return defaultTag, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return defaultTag, false
	}
	return supportedTags[idx], true
}

// MatchTags picks the best supported locale for the ordered preferences.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return defaultTag
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return defaultTag
	}
	return supportedTags[idx]
}
