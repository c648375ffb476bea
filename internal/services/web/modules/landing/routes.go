package landing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/radchenko/landing/internal/services/web/platform/weberror"
	"github.com/radchenko/landing/internal/services/web/routepath"
)

func registerRoutes(r chi.Router, h handlers) {
	if r == nil {
		return
	}
	r.Get(routepath.Root, h.handleRoot)
	r.Head(routepath.Root, h.handleRoot)
	r.Get(routepath.Health, h.handleHealth)
	r.Head(routepath.Health, h.handleHealth)

	r.MethodNotAllowed(weberror.MethodNotAllowed(http.MethodGet, http.MethodHead))
	r.NotFound(h.handleNotFound)
}
