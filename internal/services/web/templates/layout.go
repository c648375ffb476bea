// Package templates renders the HTML document shell and page fragments shared
// by web modules.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/radchenko/landing/internal/services/web/ui/adapt"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const defaultLang = "ru"

// PageOptions describes the document head of one page.
type PageOptions struct {
	Title       string
	Description string
	Lang        string
}

// Layout renders a full HTML document. Page fragments are passed as templ
// children and rendered inside <main>.
func Layout(opts PageOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = defaultLang
		}

		return c.HTML5(c.HTML5Props{
			Title:       opts.Title,
			Description: opts.Description,
			Language:    lang,
			Head: []g.Node{
				h.Meta(h.Name("theme-color"), h.Content("#ffffff")),
			},
			Body: []g.Node{
				h.Class("bg-bg-primary text-text-primary antialiased"),
				h.Main(
					h.ID("main"),
					adapt.Node(ctx, children),
				),
			},
		}).Render(w)
	})
}
