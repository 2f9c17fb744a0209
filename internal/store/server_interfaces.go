// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/qr-facil/models"
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/server_store_mock.go -package=mock

// RemoteHistoryRepository is the remote copy of the users' scan history.
// Every write is idempotent so that outbox replays are safe.
type RemoteHistoryRepository interface {
	Upsert(ctx context.Context, record models.CloudHistoryRecord) error
	Delete(ctx context.Context, scope, clientSideID string) error
	DeleteAll(ctx context.Context, scope string) (int64, error)
}

// RemoteQRCodeRepository is the remote copy of the users' saved QR codes.
type RemoteQRCodeRepository interface {
	Upsert(ctx context.Context, code models.CloudQRCode) error
}

// RemoteProfileRepository is the remote copy of the users' profiles.
type RemoteProfileRepository interface {
	UpsertPremium(ctx context.Context, profile models.CloudProfile) error
}
