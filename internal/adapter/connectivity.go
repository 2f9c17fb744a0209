// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/qr-facil/internal/logger"
)

type pingConnectivity struct {
	remote  RemoteStore
	timeout time.Duration
	logger  *logger.Logger
}

// NewConnectivity returns a [Connectivity] that pings remote with the given
// timeout on every check.
func NewConnectivity(remote RemoteStore, timeout time.Duration, logger *logger.Logger) Connectivity {
	return &pingConnectivity{
		remote:  remote,
		timeout: timeout,
		logger:  logger,
	}
}

func (c *pingConnectivity) Online(ctx context.Context) bool {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.remote.Ping(ctx); err != nil {
		c.logger.Debug().Err(err).Str("func", "pingConnectivity.Online").Msg("remote store is offline")
		return false
	}

	return true
}
