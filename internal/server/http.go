// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/logger"
)

const (
	defaultRequestTimeout = 30 * time.Second
	readHeaderTimeout     = 5 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg *config.ServerConfig, logger *logger.Logger) *httpServer {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           http.TimeoutHandler(handler, timeout, `{"error":"request timed out"}`),
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       timeout,
			WriteTimeout:      timeout + time.Second,
		},
		logger: logger,
	}
}

// serve blocks until the listener fails or the server is shut down. A
// graceful shutdown is not an error.
func (h *httpServer) serve() error {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server ListenAndServe: %w", err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server Shutdown: %w", err)
	}
	return nil
}
