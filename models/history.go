// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultHistoryLimit is the hard cap applied to history listings when the
// caller does not provide a positive limit.
const DefaultHistoryLimit = 100

// HistoryRecord is a persisted, immutable copy of a [ClassifiedCode] plus the
// metadata assigned by the local store.
type HistoryRecord struct {
	// ID is assigned by the store; it is unique and grows monotonically.
	ID int64 `json:"id"`

	// ClientSideID is a UUID generated on insert. It identifies the record in
	// the remote store so that replays of the same mutation are idempotent.
	ClientSideID string `json:"client_side_id"`

	Type        CodeType `json:"type"`
	RawData     string   `json:"raw_data"`
	Payload     Payload  `json:"-"`
	Description string   `json:"description"`
	ActionText  string   `json:"action_text"`

	// CreatedAt is set by the store on insert and never changes.
	CreatedAt time.Time `json:"created_at"`

	// UserScope is the optional user key (the account e-mail). Empty means
	// the record is not owned by any account.
	UserScope string `json:"user_email,omitempty"`
}

// Code rebuilds the classified code the record was created from.
func (r HistoryRecord) Code() ClassifiedCode {
	return ClassifiedCode{
		Type:        r.Type,
		RawData:     r.RawData,
		Payload:     r.Payload,
		Description: r.Description,
		ActionText:  r.ActionText,
	}
}
