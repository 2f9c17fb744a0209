// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// validate checks the settings shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Locale != "" {
		if _, err := language.Parse(cfg.App.Locale); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	if cfg.Scanner.Cooldown < 0 {
		return ErrInvalidScannerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || cfg.Storage.ContactsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress != "" {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidAdapterConfigs
		}
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PingTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.OutboxRetention <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Locale == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.UserScope != "" && !strings.Contains(cfg.App.UserScope, "@") {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DSN == "" || strings.HasPrefix(cfg.DSN, "file:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
