// Package adapt bridges gomponents nodes and templ components so pages can
// mix both.
package adapt

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component wraps a gomponents node as a templ component.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// Node wraps a templ component as a gomponents node rendered with ctx.
func Node(ctx context.Context, component templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		if component == nil {
			return nil
		}
		if ctx == nil {
			ctx = context.Background()
		}
		return component.Render(ctx, w)
	})
}
