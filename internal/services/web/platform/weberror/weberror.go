// Package weberror renders error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/radchenko/landing/internal/platform/logging"
	apperrors "github.com/radchenko/landing/internal/services/web/platform/errors"
	webi18n "github.com/radchenko/landing/internal/services/web/platform/i18n"
	"github.com/radchenko/landing/internal/services/web/platform/pagerender"
	webtemplates "github.com/radchenko/landing/internal/services/web/templates"
	"go.uber.org/zap"
)

// ShouldRenderPage reports whether status gets a full error page.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteStatusPage writes a localized full-document error page.
func WriteStatusPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, tag := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		StatusCode: statusCode,
		Options: webtemplates.PageOptions{
			Title: webtemplates.StatusPageTitle(statusCode, loc),
			Lang:  webi18n.LangAttr(tag),
		},
		Fragment: webtemplates.StatusState(statusCode, loc),
	})
	if err != nil {
		logging.FromContext(r.Context()).Error("render status page", zap.Int("status", statusCode), zap.Error(err))
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// MethodNotAllowed answers with 405, an Allow header listing allow and a
// localized plain-text body.
func MethodNotAllowed(allow ...string) http.HandlerFunc {
	value := strings.Join(allow, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		if w == nil {
			return
		}
		w.Header().Set("Allow", value)
		WriteError(w, r, apperrors.EK(apperrors.KindMethodNotAllowed, "core.method_not_allowed",
			r.Method+" not allowed on "+r.URL.Path))
	}
}

// WriteError logs err and answers with the status its kind maps to.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil || err == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	logger := logging.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	} else {
		logger.Warn("request rejected", zap.Error(err))
	}
	if ShouldRenderPage(statusCode) {
		WriteStatusPage(w, r, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
