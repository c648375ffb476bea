package hero

import (
	platformi18n "github.com/radchenko/landing/internal/platform/i18n"
	"github.com/radchenko/landing/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

// ImagePath is the portrait served by the static asset host.
const ImagePath = "/images/image12.png"

// Content is the immutable copy rendered by Section.
type Content struct {
	Title          string
	Subtitle       string
	Paragraphs     [2]string
	ImagePath      string
	ImageAlt       string
	LearnMoreLabel string
	ConsultLabel   string
}

// DefaultContent returns the base-locale content.
func DefaultContent() Content {
	return ContentFor(language.MustParse(catalog.BaseLocale))
}

// ContentFor returns the content for the supported locale that best matches
// tag. Unsupported locales and missing keys fall back to the base locale.
func ContentFor(tag language.Tag) Content {
	locale := platformi18n.MatchTags([]language.Tag{tag}).String()
	msg := func(key string) string {
		value, _ := catalog.Default().Message(locale, key)
		return value
	}
	return Content{
		Title:    msg("hero.title"),
		Subtitle: msg("hero.subtitle"),
		Paragraphs: [2]string{
			msg("hero.paragraph_1"),
			msg("hero.paragraph_2"),
		},
		ImagePath:      ImagePath,
		ImageAlt:       msg("hero.image_alt"),
		LearnMoreLabel: msg("hero.learn_more"),
		ConsultLabel:   msg("hero.consult_cta"),
	}
}
