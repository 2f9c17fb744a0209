// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Locale: "es"}},
		&StructuredConfig{App: App{Locale: "en", Version: "1.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.App.Locale)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestBuild_InvalidLocale(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Locale: "??"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_UsesFirstPath(t *testing.T) {
	first := writeConfigFile(t, "first.json", `{"app": {"version": "first"}}`)
	second := writeConfigFile(t, "second.json", `{"app": {"version": "second"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

func TestWithFile_SetsErrorWhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/no/such/file.json"})
	b.withFile()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_LOCALE", "es")

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("APP_LOCALE=pt-BR\nAPP_VERSION=9.9.9\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APP_VERSION") })

	b := newConfigBuilder().withDotEnv(dotenv).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "es", b.configs[0].App.Locale)
	assert.Equal(t, "9.9.9", b.configs[0].App.Version)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestLoadStructuredConfig_Precedence(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())

	file := writeConfigFile(t, "config.yaml", `
app:
  locale: pt-BR
  version: from-file
workers:
  sync_interval: 5m
`)
	t.Setenv("CONFIG", file)
	t.Setenv("APP_VERSION", "from-env")

	cfg, err := loadStructuredConfig([]string{"-locale", "es"})
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.App.Locale)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Second, cfg.Scanner.Cooldown)
	assert.Equal(t, "contacts", cfg.Storage.Contacts.Dir)
}

func TestNewClientConfig(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaults()
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
		cfg.App.UserScope = "me@example.com"
		return cfg
	}

	cfg, err := newClientConfig(valid())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "me@example.com", cfg.App.UserScope)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "offline client is valid", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "non-http remote", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "ftp://x" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero ping timeout", mutate: func(c *StructuredConfig) { c.Adapter.PingTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero sync interval", mutate: func(c *StructuredConfig) { c.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "scope without at sign", mutate: func(c *StructuredConfig) { c.App.UserScope = "me" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			_, err := newClientConfig(c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig(t *testing.T) {
	cfg := defaults()
	_, err := newServerConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://u:p@localhost/qr"
	sc, err := newServerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", sc.HTTPAddress)

	cfg.Server.RequestTimeout = 0
	_, err = newServerConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}
