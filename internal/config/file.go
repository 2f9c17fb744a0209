// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout shared by JSON and YAML config files.
type fileConfig struct {
	App struct {
		Locale    string `json:"locale" yaml:"locale"`
		UserScope string `json:"user_scope" yaml:"user_scope"`
		Version   string `json:"version" yaml:"version"`
		LogLevel  string `json:"log_level" yaml:"log_level"`
		LogFile   string `json:"log_file" yaml:"log_file"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Contacts struct {
			Dir string `json:"dir" yaml:"dir"`
		} `json:"contacts" yaml:"contacts"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		PingTimeout    Duration `json:"ping_timeout" yaml:"ping_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval" yaml:"sync_interval"`
		OutboxRetention Duration `json:"outbox_retention" yaml:"outbox_retention"`
	} `json:"workers" yaml:"workers"`

	Scanner struct {
		Source   string   `json:"source" yaml:"source"`
		Cooldown Duration `json:"cooldown" yaml:"cooldown"`
	} `json:"scanner" yaml:"scanner"`
}

// parseFile reads a config file, choosing the decoder by extension:
// .yaml and .yml are YAML, anything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.structured(), nil
}

func (fc fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale:    fc.App.Locale,
			UserScope: fc.App.UserScope,
			Version:   fc.App.Version,
			LogLevel:  fc.App.LogLevel,
			LogFile:   fc.App.LogFile,
		},
		Storage: Storage{
			DB:       DB{DSN: fc.Storage.DB.DSN},
			Contacts: Contacts{Dir: fc.Storage.Contacts.Dir},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			PingTimeout:    time.Duration(fc.Adapter.PingTimeout),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(fc.Workers.SyncInterval),
			OutboxRetention: time.Duration(fc.Workers.OutboxRetention),
		},
		Scanner: Scanner{
			Source:   fc.Scanner.Source,
			Cooldown: time.Duration(fc.Scanner.Cooldown),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
