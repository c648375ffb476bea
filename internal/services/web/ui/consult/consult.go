// Package consult renders the consultation call-to-action button. Client
// scripts attach to data-consultation-trigger and open the request form;
// data-source-page tells them which page the request came from.
package consult

import (
	"strings"

	"github.com/radchenko/landing/internal/platform/i18n/catalog"
	"github.com/radchenko/landing/internal/services/web/ui/classnames"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Variant selects the button colour scheme.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
)

// Size selects the button padding and font size.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
)

// DefaultLabel returns the base-locale call-to-action text used when
// Props.Label is blank.
func DefaultLabel() string {
	label, _ := catalog.Default().Message(catalog.BaseLocale, "hero.consult_cta")
	return label
}

const baseClass = "inline-flex items-center justify-center rounded-lg font-medium transition-all duration-200 focus:outline-none focus-visible:ring-2 focus-visible:ring-brand-primary focus-visible:ring-offset-2"

var variantClasses = map[Variant]string{
	VariantPrimary:   "bg-brand-primary text-white hover:bg-brand-primary/90",
	VariantSecondary: "bg-brand-accent text-white hover:bg-brand-accent/90",
	VariantOutline:   "border-2 border-brand-primary text-brand-primary hover:bg-brand-primary hover:text-white",
}

var sizeClasses = map[Size]string{
	SizeSM: "px-4 py-2 text-sm",
	SizeMD: "px-5 py-2.5 text-base",
	SizeLG: "px-6 py-3 text-base md:text-lg",
}

// Props configures Button.
type Props struct {
	// SourcePage identifies the page the consultation request starts from.
	SourcePage string
	Variant    Variant
	Size       Size
	Class      string
	Label      string
}

// Button renders the consultation trigger.
func Button(p Props) g.Node {
	variant := p.Variant
	if _, ok := variantClasses[variant]; !ok {
		variant = VariantPrimary
	}
	size := p.Size
	if _, ok := sizeClasses[size]; !ok {
		size = SizeMD
	}
	label := strings.TrimSpace(p.Label)
	if label == "" {
		label = DefaultLabel()
	}

	return h.Button(
		h.Type("button"),
		h.Class(classnames.Merge(baseClass, variantClasses[variant], sizeClasses[size], p.Class)),
		g.Attr("data-consultation-trigger"),
		h.Data("source-page", strings.TrimSpace(p.SourcePage)),
		h.Data("variant", string(variant)),
		h.Data("size", string(size)),
		g.Text(label),
	)
}
