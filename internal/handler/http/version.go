// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

// health answers 200 while the storage is reachable and 503 otherwise.
// Clients use it as their connectivity check.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.storage != nil {
		if err := h.storage.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("storage ping failed")
			utils.WriteError(w, r, "storage is unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	_, _ = utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
