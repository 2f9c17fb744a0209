// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/users/{scope}", func(r chi.Router) {
		r.Use(h.withScope)
		r.Put("/history/{clientID}", h.upsertHistory)
		r.Delete("/history/{clientID}", h.deleteHistory)
		r.Delete("/history", h.deleteAllHistory)
		r.Put("/qrcodes/{clientID}", h.saveQRCode)
		r.Put("/profile/premium", h.updatePremium)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
