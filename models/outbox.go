// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// MutationKind names a local mutation that has to be mirrored remotely.
type MutationKind string

const (
	MutationHistorySave      MutationKind = "history.save"
	MutationHistoryDelete    MutationKind = "history.delete"
	MutationHistoryDeleteAll MutationKind = "history.delete_all"
	MutationQRCodeSave       MutationKind = "qrcode.save"
	MutationProfilePremium   MutationKind = "profile.premium"
)

// MutationStatus is the visible state of an outbox entry.
type MutationStatus string

const (
	// MutationPending entries still have to be replayed.
	MutationPending MutationStatus = "pending"

	// MutationSynced entries were accepted by the remote store.
	MutationSynced MutationStatus = "synced"

	// MutationFailed entries were rejected for good and are never replayed.
	// LastError keeps the reason.
	MutationFailed MutationStatus = "failed"
)

// PendingMutation is one entry of the local outbox (pending-sync queue).
// Entries are replayed in ID order.
type PendingMutation struct {
	ID        int64           `json:"id"`
	Kind      MutationKind    `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	Status    MutationStatus  `json:"status"`
	Attempts  int             `json:"attempts"`
	LastError string          `json:"last_error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HistoryRef points an outbox entry at a local history row. The cloud record
// is re-derived from that row at send time.
type HistoryRef struct {
	HistoryID int64 `json:"history_id"`
}

// HistoryDeleteRef describes a deleted history row. The row itself is gone,
// so the remote key is carried in the entry.
type HistoryDeleteRef struct {
	ClientSideID string `json:"client_side_id"`
	UserScope    string `json:"user_email"`
}

// HistoryWipeRef describes a bulk history deletion for one account.
type HistoryWipeRef struct {
	UserScope string `json:"user_email"`
}

// QRCodeRef points an outbox entry at a local saved QR code.
type QRCodeRef struct {
	QRCodeID int64 `json:"qr_code_id"`
}

// ProfileRef points an outbox entry at a local user profile.
type ProfileRef struct {
	UserScope string `json:"user_email"`
}

// FlushResult summarises one replay of the outbox.
type FlushResult struct {
	Synced    int  `json:"synced"`
	Rejected  int  `json:"rejected"`
	Remaining int  `json:"remaining"`
	Offline   bool `json:"offline"`
}
