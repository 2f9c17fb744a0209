// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_LOCALE":     "pt-BR",
		"APP_USER_SCOPE": "me@example.com",
		"APP_VERSION":    "1.2.3",
		"APP_LOG_LEVEL":  "debug",
		"APP_LOG_FILE":   "/tmp/qr.log",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
		"ADAPTER_PING_TIMEOUT":    "1s",

		"WORKERS_SYNC_INTERVAL":    "1m",
		"WORKERS_OUTBOX_RETENTION": "24h",

		"SCANNER_SOURCE":   "/tmp/scanner.fifo",
		"SCANNER_COOLDOWN": "1500ms",

		"STORAGE_DB_DSN":       "file:test.db",
		"STORAGE_CONTACTS_DIR": "/var/contacts",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)
	assert.Equal(t, App{
		Locale:    "pt-BR",
		UserScope: "me@example.com",
		Version:   "1.2.3",
		LogLevel:  "debug",
		LogFile:   "/tmp/qr.log",
	}, cfg.App)
	assert.Equal(t, Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second}, cfg.Server)
	assert.Equal(t, Adapter{
		HTTPAddress:    "http://localhost:8080",
		RequestTimeout: 5 * time.Second,
		PingTimeout:    time.Second,
	}, cfg.Adapter)
	assert.Equal(t, Workers{SyncInterval: time.Minute, OutboxRetention: 24 * time.Hour}, cfg.Workers)
	assert.Equal(t, Scanner{Source: "/tmp/scanner.fifo", Cooldown: 1500 * time.Millisecond}, cfg.Scanner)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/contacts", cfg.Storage.Contacts.Dir)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_SYNC_INTERVAL": "often"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read QR Fácil environment")
}

func TestParseEnvFrom_IgnoresProcessEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_LOCALE": "pt-BR"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(cfg, map[string]string{
		"APP_LOCALE":       "en",
		"SCANNER_COOLDOWN": "2s",
	}))

	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, 2*time.Second, cfg.Scanner.Cooldown)
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",
	"APP_LOCALE", "APP_USER_SCOPE", "APP_VERSION", "APP_LOG_LEVEL", "APP_LOG_FILE",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT", "ADAPTER_PING_TIMEOUT",
	"WORKERS_SYNC_INTERVAL", "WORKERS_OUTBOX_RETENTION",
	"SCANNER_SOURCE", "SCANNER_COOLDOWN",
	"STORAGE_DB_DSN", "STORAGE_CONTACTS_DIR",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every config variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
