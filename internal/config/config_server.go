// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the remote store configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Version        string
	LogLevel       string
	HTTPAddress    string
	RequestTimeout time.Duration

	// DSN is the PostgreSQL connection string.
	DSN string
}

// GetServerConfig builds and validates the remote store view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Version:        cfg.App.Version,
		LogLevel:       cfg.App.LogLevel,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
	}

	return serverCfg, serverCfg.validate()
}
