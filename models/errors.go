// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrUnknownCodeType is returned when a stored or transmitted type name
	// does not match any [CodeType].
	ErrUnknownCodeType = errors.New("unknown code type")

	// ErrPayloadTypeMismatch is returned when a payload is decoded for a type
	// different from the one it was encoded with.
	ErrPayloadTypeMismatch = errors.New("payload type mismatch")

	// ErrUnknownMutationKind is returned when an outbox entry carries a kind
	// the sync layer does not know how to replay.
	ErrUnknownMutationKind = errors.New("unknown mutation kind")
)
