// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It wires the terminal UI, the action dispatcher, the client services and
// the outbox sync worker into a single process lifecycle.
package client
