// Package image renders responsive <img> elements.
package image

import (
	"strconv"
	"strings"

	"github.com/radchenko/landing/internal/services/web/ui/classnames"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const fillClass = "absolute inset-0 h-full w-full"

// SizeHint maps a viewport max-width to the rendered slot size. A zero
// MaxWidthPX is the default slot and belongs last.
type SizeHint struct {
	MaxWidthPX int
	Size       string
}

// Props configures Image.
type Props struct {
	Src   string
	Alt   string
	Class string
	// Fill stretches the image over its positioned parent.
	Fill  bool
	Sizes []SizeHint
	// Priority requests eager, high-priority loading for above-the-fold images.
	Priority bool
	Width    int
	Height   int
}

// Image renders an <img> element. Alt is always emitted, even when empty, so
// purely decorative images are skipped by assistive technology.
func Image(p Props) g.Node {
	class := p.Class
	if p.Fill {
		class = classnames.Merge(fillClass, p.Class)
	}
	loading, fetchPriority := "lazy", ""
	if p.Priority {
		loading, fetchPriority = "eager", "high"
	}
	sizes := SizesAttr(p.Sizes)

	return h.Img(
		h.Src(p.Src),
		h.Alt(p.Alt),
		g.If(class != "", h.Class(class)),
		g.If(sizes != "", g.Attr("sizes", sizes)),
		g.If(!p.Fill && p.Width > 0, h.Width(strconv.Itoa(p.Width))),
		g.If(!p.Fill && p.Height > 0, h.Height(strconv.Itoa(p.Height))),
		g.Attr("loading", loading),
		g.If(fetchPriority != "", g.Attr("fetchpriority", fetchPriority)),
		g.Attr("decoding", "async"),
	)
}

// SizesAttr serialises hints into a sizes attribute value such as
// "(max-width: 768px) 100vw, 33vw".
func SizesAttr(hints []SizeHint) string {
	parts := make([]string, 0, len(hints))
	for _, hint := range hints {
		size := strings.TrimSpace(hint.Size)
		if size == "" {
			continue
		}
		if hint.MaxWidthPX <= 0 {
			parts = append(parts, size)
			continue
		}
		parts = append(parts, "(max-width: "+strconv.Itoa(hint.MaxWidthPX)+"px) "+size)
	}
	return strings.Join(parts, ", ")
}
