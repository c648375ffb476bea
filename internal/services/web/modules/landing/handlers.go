package landing

import (
	"fmt"
	"net/http"

	apperrors "github.com/radchenko/landing/internal/services/web/platform/errors"
	"github.com/radchenko/landing/internal/services/web/platform/httpx"
	webi18n "github.com/radchenko/landing/internal/services/web/platform/i18n"
	"github.com/radchenko/landing/internal/services/web/platform/pagerender"
	"github.com/radchenko/landing/internal/services/web/platform/weberror"
	webtemplates "github.com/radchenko/landing/internal/services/web/templates"
	"github.com/radchenko/landing/internal/services/web/ui/hero"
)

type handlers struct {
	content ContentSource
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	loc, tag := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Options: webtemplates.PageOptions{
			Title:       loc.Sprintf("core.page_title"),
			Description: loc.Sprintf("core.meta_description"),
			Lang:        webi18n.LangAttr(tag),
		},
		Fragment: hero.Component(h.content(tag), hero.Options{}),
	})
	if err != nil {
		weberror.WriteError(w, r, fmt.Errorf("render landing page: %w", err))
	}
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteError(w, r, apperrors.EK(apperrors.KindNotFound, "core.not_found_title", "no route for "+r.URL.Path))
}
