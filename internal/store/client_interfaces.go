// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/qr-facil/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// HistoryRepository is the local, append-only scan history. Rows are never
// updated in place; they are only inserted and deleted.
type HistoryRepository interface {
	Save(ctx context.Context, code models.ClassifiedCode, scope string) (models.HistoryRecord, error)
	List(ctx context.Context, scope string, limit int) ([]models.HistoryRecord, error)
	GetByID(ctx context.Context, id int64) (models.HistoryRecord, error)
	DeleteOne(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context, scope string) (int64, error)
}

// OutboxRepository is the durable queue of local mutations that still have
// to be mirrored to the remote store.
type OutboxRepository interface {
	// Enqueue appends an entry inside the caller's transaction so the entry
	// commits or rolls back together with the local write.
	Enqueue(ctx context.Context, tx *sql.Tx, kind models.MutationKind, ref any) (int64, error)
	ListPending(ctx context.Context, limit int) ([]models.PendingMutation, error)
	MarkSynced(ctx context.Context, id int64) error
	// MarkFailed counts a failed attempt. The entry stays pending.
	MarkFailed(ctx context.Context, id int64, cause error) error
	// MarkRejected moves the entry to the failed status, out of the queue.
	MarkRejected(ctx context.Context, id int64, cause error) error
	PruneSynced(ctx context.Context, olderThan time.Time) (int64, error)
	CountPending(ctx context.Context) (int, error)
}

// QRCodeRepository stores the QR codes generated and saved by the user.
type QRCodeRepository interface {
	Save(ctx context.Context, code models.QRCodeRecord) (models.QRCodeRecord, error)
	GetByID(ctx context.Context, id int64) (models.QRCodeRecord, error)
	List(ctx context.Context, scope string, limit int) ([]models.QRCodeRecord, error)
}

// ProfileRepository stores the per-account flags kept on the device.
type ProfileRepository interface {
	SetPremium(ctx context.Context, scope string, premium bool) (models.UserProfile, error)
	Get(ctx context.Context, scope string) (models.UserProfile, error)
}
