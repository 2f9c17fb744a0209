// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/utils"
	"github.com/rs/zerolog"
)

// withScope unescapes the {scope} path parameter once and stores it in the
// request context. The request logger gets a "scope" field.
func (h *Handler) withScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, err := pathParam(r, "scope")
		if err != nil {
			writeServiceError(w, r, "*Handler.withScope", err)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("scope", scope)
		})

		ctx := utils.WithScope(r.Context(), scope)
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// scopeFromRequest returns the scope stored by withScope.
func scopeFromRequest(r *http.Request) (string, error) {
	scope, ok := utils.GetScopeFromContext(r.Context())
	if !ok {
		return "", ErrInvalidPathParam
	}
	return scope, nil
}
