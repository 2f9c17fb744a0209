// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the remote store. It is populated by merging command-line flags,
// environment variables (optionally seeded from a .env file), an optional
// JSON or YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`

	// Adapter configures the client's connection to the remote store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`
	Scanner Scanner `envPrefix:"SCANNER_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Locale is a BCP 47 tag used to pick the UI language (e.g. "pt-BR").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// UserScope is the account e-mail history and saved codes are filed
	// under. Empty keeps everything local.
	// Env: APP_USER_SCOPE
	UserScope string `env:"USER_SCOPE"`

	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB       DB       `envPrefix:"DB_"`
	Contacts Contacts `envPrefix:"CONTACTS_"`
}

// DB holds the database connection settings. The client expects a SQLite
// DSN, the remote store a PostgreSQL one.
type DB struct {
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Contacts configures where saved contacts are written as .vcf files.
type Contacts struct {
	// Env: STORAGE_CONTACTS_DIR
	Dir string `env:"DIR"`
}

// Server holds the remote store's listener settings.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound settings for the remote store.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store
	// (e.g. "http://localhost:8080"). Empty disables mirroring.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PingTimeout bounds the connectivity check run before each drain.
	// Env: ADAPTER_PING_TIMEOUT
	PingTimeout time.Duration `env:"PING_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// SyncInterval is how often the outbox is drained without a nudge.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// OutboxRetention is how long synced outbox entries are kept.
	// Env: WORKERS_OUTBOX_RETENTION
	OutboxRetention time.Duration `env:"OUTBOX_RETENTION"`
}

// Scanner configures the external scanner feed.
type Scanner struct {
	// Source is a file or FIFO the client reads raw codes from, one per line.
	// Env: SCANNER_SOURCE
	Source string `env:"SOURCE"`

	// Cooldown is the pause after a detected code before the next one is
	// accepted.
	// Env: SCANNER_COOLDOWN
	Cooldown time.Duration `env:"COOLDOWN"`
}

// defaults returns the values used when no other source sets a field.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale:   "en",
			LogLevel: "info",
		},
		Storage: Storage{
			DB:       DB{DSN: "file:qr-facil.db?_foreign_keys=on"},
			Contacts: Contacts{Dir: "contacts"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
			PingTimeout:    2 * time.Second,
		},
		Workers: Workers{
			SyncInterval:    30 * time.Second,
			OutboxRetention: 7 * 24 * time.Hour,
		},
		Scanner: Scanner{
			Cooldown: 2 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory fills
//     variables that are not already set)
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotEnv(".env").
		withEnv().
		withFile().
		withDefaults().
		build()
}
