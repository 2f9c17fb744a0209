// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.ServerConfig
		wantErr error
	}{
		{name: "http address configured", cfg: &config.ServerConfig{HTTPAddress: ":8080"}},
		{name: "no address", cfg: &config.ServerConfig{}, wantErr: errNoHandlersAreCreated},
		{name: "nil config", wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, h.HTTP)
			assert.NotNil(t, h.HTTP.Init())
		})
	}
}
