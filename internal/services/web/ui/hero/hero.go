// Package hero renders the landing page hero section: portrait, name,
// tagline, consultation call-to-action and the in-page "learn more" link.
//
// The section is a pure function of Content and Options. Responsive layout
// classes come from LayoutPolicy, so the narrow/wide ordering lives in one
// table instead of being spread over the markup.
package hero

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/radchenko/landing/internal/platform/icons"
	"github.com/radchenko/landing/internal/services/web/routepath"
	"github.com/radchenko/landing/internal/services/web/ui/classnames"
	"github.com/radchenko/landing/internal/services/web/ui/consult"
	"github.com/radchenko/landing/internal/services/web/ui/icon"
	"github.com/radchenko/landing/internal/services/web/ui/image"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	// BaseClass is always present on the section root.
	BaseClass = "min-h-screen flex items-center justify-center px-4 py-16 bg-bg-primary"

	// SectionID is the anchor of the hero section.
	SectionID = "hero"
	// SourcePage is reported by the consultation button.
	SourcePage = "home"

	titleID = "hero-title"
)

// ImageSizes are the responsive slot sizes of the portrait.
var ImageSizes = []image.SizeHint{
	{MaxWidthPX: 768, Size: "100vw"},
	{MaxWidthPX: 1200, Size: "50vw"},
	{Size: "33vw"},
}

// Options customises the section root.
type Options struct {
	// Class is appended to BaseClass.
	Class string
}

var tracer = otel.Tracer("github.com/radchenko/landing/internal/services/web/ui/hero")

// Component returns the section as a templ component and records a render
// span on the request trace.
func Component(content Content, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, span := tracer.Start(ctx, "hero.render")
		defer span.End()

		if err := Section(content, opts).Render(w); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return nil
	})
}

// Section builds the hero node tree.
func Section(content Content, opts Options) g.Node {
	layout := LayoutPolicy.classes()

	return h.Section(
		h.ID(SectionID),
		h.Class(classnames.Merge(BaseClass, opts.Class)),
		h.Aria("labelledby", titleID),
		h.Div(
			h.Class("max-w-7xl mx-auto w-full"),
			h.Div(
				h.Class(classnames.Merge("grid", layout.grid, "gap-8 lg:gap-12 items-center")),
				textBlock(content, layout),
				imageBlock(content, layout),
			),
			scrollIndicator(layout),
		),
	)
}

func textBlock(content Content, layout layoutClasses) g.Node {
	paragraphClass := classnames.Merge("text-base md:text-lg text-text-secondary max-w-xl", layout.paragraphEdge)

	return h.Div(
		h.Class(layout.textBlock),
		h.Data("hero-block", "text"),
		h.H1(
			h.ID(titleID),
			h.Class("text-4xl md:text-5xl lg:text-6xl font-bold text-brand-primary mb-4 leading-tight"),
			g.Text(content.Title),
		),
		h.P(
			h.Class("text-xl md:text-2xl text-text-primary mb-6 font-medium"),
			g.Text(content.Subtitle),
		),
		h.Div(
			h.Class("space-y-4 mb-8"),
			g.Map(content.Paragraphs[:], func(paragraph string) g.Node {
				return h.P(h.Class(paragraphClass), g.Text(paragraph))
			}),
		),
		h.Div(
			h.Class(classnames.Merge("flex flex-col sm:flex-row gap-4", layout.actions)),
			consult.Button(consult.Props{
				SourcePage: SourcePage,
				Variant:    consult.VariantPrimary,
				Size:       consult.SizeLG,
				Class:      "shadow-lg hover:shadow-xl",
				Label:      content.ConsultLabel,
			}),
			h.A(
				h.Href(routepath.Services),
				h.Class("inline-flex items-center justify-center px-6 py-3 text-base font-medium text-brand-primary border-2 border-brand-primary rounded-lg hover:bg-brand-primary hover:text-white transition-colors duration-200"),
				g.Text(content.LearnMoreLabel),
			),
		),
	)
}

func imageBlock(content Content, layout layoutClasses) g.Node {
	return h.Div(
		h.Class(classnames.Merge(layout.imageBlock, "flex", layout.imageJustify)),
		h.Data("hero-block", "image"),
		h.Div(
			h.Class("relative w-full max-w-md lg:max-w-lg"),
			h.Div(
				h.Class("aspect-[3/4] relative rounded-2xl overflow-hidden shadow-2xl"),
				image.Image(image.Props{
					Src:      content.ImagePath,
					Alt:      content.ImageAlt,
					Class:    "object-cover",
					Fill:     true,
					Sizes:    ImageSizes,
					Priority: true,
				}),
			),
			decoration("-top-4 -right-4 w-24 h-24 bg-brand-accent/10"),
			decoration("-bottom-4 -left-4 w-32 h-32 bg-brand-primary/10"),
		),
	)
}

// decoration renders an ornamental circle behind the portrait. It is hidden
// from assistive technology and ignores pointer input.
func decoration(placement string) g.Node {
	return h.Div(
		h.Class(classnames.Merge("pointer-events-none absolute rounded-full -z-10", placement)),
		h.Aria("hidden", "true"),
		h.Data("hero-decoration", ""),
	)
}

func scrollIndicator(layout layoutClasses) g.Node {
	return h.Div(
		h.Class(classnames.Merge(layout.scroll, "justify-center mt-16")),
		h.Data("scroll-indicator", ""),
		h.Div(
			h.Class("animate-bounce"),
			icon.SVG(icons.ArrowDown, "w-6 h-6 text-brand-primary"),
		),
	)
}
