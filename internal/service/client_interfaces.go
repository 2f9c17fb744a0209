// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/qr-facil/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// HistoryStore is the client's scan history as seen by the UI and the action
// dispatcher. Failures are logged and reported as ok=false; no error leaves
// this boundary.
type HistoryStore interface {
	// Save appends code and returns the new record id.
	Save(ctx context.Context, code models.ClassifiedCode, scope string) (id int64, ok bool)

	// List returns at most limit records of scope, newest first. A limit of
	// zero or less means [models.DefaultHistoryLimit].
	List(ctx context.Context, scope string, limit int) ([]models.HistoryRecord, bool)

	GetByID(ctx context.Context, id int64) (models.HistoryRecord, bool)
	DeleteOne(ctx context.Context, id int64) bool

	// DeleteAll removes every record of scope. An empty scope wipes the
	// whole local history.
	DeleteAll(ctx context.Context, scope string) bool
}

// SyncService replays the local outbox against the remote store.
type SyncService interface {
	// Drain replays pending entries when the remote store is reachable and
	// does nothing otherwise.
	Drain(ctx context.Context) error

	// FlushPending is the explicit form of Drain. It reports what was done.
	FlushPending(ctx context.Context) (models.FlushResult, error)

	// Pending returns the number of entries still waiting for replay.
	Pending(ctx context.Context) (int, error)

	// Prune removes synced entries older than the configured retention.
	Prune(ctx context.Context) (int64, error)

	// Nudge asks for a drain as soon as possible. It never blocks.
	Nudge()

	// Nudges delivers the signals sent by Nudge.
	Nudges() <-chan struct{}
}

// Nudger is the part of [SyncService] local writers depend on.
type Nudger interface {
	Nudge()
}

// Encoder renders text as a QR module matrix.
type Encoder interface {
	Encode(content string, level models.ErrorCorrection) (models.Matrix, error)
}

// QRCodeService generates QR codes from structured payloads and keeps the
// ones the user saves.
type QRCodeService interface {
	Generate(ctx context.Context, scope string, payload models.Payload, level models.ErrorCorrection) (models.QRCodeRecord, models.Matrix, error)
	List(ctx context.Context, scope string, limit int) ([]models.QRCodeRecord, error)
}

// ProfileService manages the per-account flags.
type ProfileService interface {
	SetPremium(ctx context.Context, scope string, premium bool) error
	IsPremium(ctx context.Context, scope string) (bool, error)
}
