// Package landing serves the public landing page, the health probe and the
// not-found page.
package landing

import (
	"github.com/go-chi/chi/v5"
	module "github.com/radchenko/landing/internal/services/web/module"
	"github.com/radchenko/landing/internal/services/web/routepath"
	"github.com/radchenko/landing/internal/services/web/ui/hero"
	"golang.org/x/text/language"
)

// ContentSource resolves the hero copy for a locale.
type ContentSource func(language.Tag) hero.Content

// Module provides the landing routes.
type Module struct {
	content ContentSource
}

// New returns a landing module. A nil source uses the embedded catalogs.
func New(content ContentSource) Module {
	if content == nil {
		content = hero.ContentFor
	}
	return Module{content: content}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "landing" }

// Mount returns the module routes mounted at the site root.
func (m Module) Mount() (module.Mount, error) {
	router := chi.NewRouter()
	registerRoutes(router, handlers{content: m.content})
	return module.Mount{Prefix: routepath.Root, Handler: router}, nil
}
