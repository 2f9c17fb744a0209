// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/MKhiriev/qr-facil/internal/utils"
)

// Pinger reports whether the backing storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the remote store API.
type Handler struct {
	services *service.Services
	storage  Pinger
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, storage Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		storage:  storage,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
