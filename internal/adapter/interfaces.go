// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the qr-facil remote store.
//
// [RemoteStore] decouples the sync layer from the protocol. The package
// ships an HTTP/REST implementation ([NewRemoteStore]) and an offline
// implementation used when no remote address is configured.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/qr-facil/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore mirrors local mutations to the remote store. Every call is
// idempotent on the server side, so a mutation may be replayed safely.
type RemoteStore interface {
	// Ping checks that the remote store is reachable.
	Ping(ctx context.Context) error

	UpsertHistory(ctx context.Context, record models.CloudHistoryRecord) error
	DeleteHistory(ctx context.Context, scope, clientSideID string) error
	DeleteAllHistory(ctx context.Context, scope string) error
	SaveQRCode(ctx context.Context, code models.CloudQRCode) error
	UpdatePremium(ctx context.Context, profile models.CloudProfile) error
}

// Connectivity reports whether the remote store can currently be reached.
type Connectivity interface {
	Online(ctx context.Context) bool
}
