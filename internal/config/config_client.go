// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Locale    string
	UserScope string
	Version   string
	LogLevel  string
	LogFile   string
}

// ClientAdapter holds the settings of the connection to the remote store.
type ClientAdapter struct {
	// HTTPAddress is the remote store base URL. Empty keeps the client
	// offline; mutations then stay pending in the outbox.
	HTTPAddress    string
	RequestTimeout time.Duration
	PingTimeout    time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DSN is the SQLite connection string.
	DSN         string
	ContactsDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncInterval    time.Duration
	OutboxRetention time.Duration
}

// ClientScanner contains the scanner feed settings.
type ClientScanner struct {
	Source   string
	Cooldown time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Scanner ClientScanner
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Locale:    cfg.App.Locale,
			UserScope: cfg.App.UserScope,
			Version:   cfg.App.Version,
			LogLevel:  cfg.App.LogLevel,
			LogFile:   cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PingTimeout:    cfg.Adapter.PingTimeout,
		},
		Storage: ClientStorage{
			DSN:         cfg.Storage.DB.DSN,
			ContactsDir: cfg.Storage.Contacts.Dir,
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			OutboxRetention: cfg.Workers.OutboxRetention,
		},
		Scanner: ClientScanner{
			Source:   cfg.Scanner.Source,
			Cooldown: cfg.Scanner.Cooldown,
		},
	}

	return clientCfg, clientCfg.validate()
}
