// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/handler/http"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/service"
)

// Handlers groups the transport handlers of the remote store.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storage http.Pinger, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg == nil || cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, storage, logger)}, nil
}
