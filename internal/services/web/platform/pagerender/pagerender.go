// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/radchenko/landing/internal/services/web/platform/httpx"
	webtemplates "github.com/radchenko/landing/internal/services/web/templates"
)

// Page describes one full-document response.
type Page struct {
	StatusCode int
	Options    webtemplates.PageOptions
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders the page into a buffer and writes it only when rendering
// succeeded, so a failed render never leaves a partial document behind.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	if err := webtemplates.Layout(page.Options).Render(ctx, &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}
