// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP API of the remote store.
//
// Clients mirror their local mutations here: history records, generated QR
// codes and premium flags, all addressed by the user scope in the path and
// the client-side id of the record. Every write is idempotent, so replays of
// the same outbox entry are safe. Request tracing and access logging are
// handled by middleware before requests reach the mirror service.
package http
