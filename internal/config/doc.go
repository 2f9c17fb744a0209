// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the qr-facil client and remote store.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables, optionally seeded from a .env file
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig], which return
// validated views of the merged [StructuredConfig].
package config
