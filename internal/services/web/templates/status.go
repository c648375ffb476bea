package templates

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	webi18n "github.com/radchenko/landing/internal/services/web/platform/i18n"
	"github.com/radchenko/landing/internal/services/web/routepath"
	"github.com/radchenko/landing/internal/services/web/ui/adapt"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// StatusPageTitle returns the localized document title for an error status.
func StatusPageTitle(statusCode int, loc webi18n.Localizer) string {
	if statusCode == http.StatusNotFound {
		return loc.Sprintf("core.not_found_title")
	}
	return loc.Sprintf("core.error_title")
}

// StatusState renders the body of an error page.
func StatusState(statusCode int, loc webi18n.Localizer) templ.Component {
	body := http.StatusText(statusCode)
	if statusCode == http.StatusNotFound {
		body = loc.Sprintf("core.not_found_body")
	}

	return adapt.Component(h.Section(
		h.Class("min-h-screen flex flex-col items-center justify-center gap-6 px-4 py-16 text-center"),
		h.Data("status", strconv.Itoa(statusCode)),
		h.P(h.Class("text-6xl font-bold text-brand-primary"), g.Text(strconv.Itoa(statusCode))),
		h.H1(h.Class("text-3xl font-semibold"), g.Text(StatusPageTitle(statusCode, loc))),
		h.P(h.Class("text-text-secondary max-w-md"), g.Text(body)),
		h.A(
			h.Href(routepath.Root),
			h.Class("text-brand-primary underline underline-offset-4"),
			g.Text(loc.Sprintf("core.back_home")),
		),
	))
}
