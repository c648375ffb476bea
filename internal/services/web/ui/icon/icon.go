// Package icon renders catalog icons as decorative inline SVG.
package icon

import (
	"github.com/radchenko/landing/internal/platform/icons"
	"github.com/radchenko/landing/internal/services/web/ui/classnames"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const baseClass = "shrink-0"

// SVG renders the icon with id. Unknown ids render nothing.
func SVG(id icons.ID, class string) g.Node {
	def, ok := icons.Lookup(id)
	if !ok {
		return g.Group(nil)
	}
	return g.El("svg",
		h.Class(classnames.Merge(baseClass, class)),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("viewBox", icons.ViewBox),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		h.Aria("hidden", "true"),
		g.Attr("focusable", "false"),
		h.Data("icon", string(def.ID)),
		g.Map(def.Paths, func(d string) g.Node {
			return g.El("path",
				g.Attr("stroke-linecap", "round"),
				g.Attr("stroke-linejoin", "round"),
				g.Attr("stroke-width", "2"),
				g.Attr("d", d),
			)
		}),
	)
}
