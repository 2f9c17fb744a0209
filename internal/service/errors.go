// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned by the remote store when a mirrored
	// record fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrScopeMismatch is returned when the account in the request path and
	// the one in the record differ.
	ErrScopeMismatch = errors.New("user scope does not match the record")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrEmptyScope is returned by client services that only make sense for
	// a signed-in account.
	ErrEmptyScope = errors.New("user scope is required")

	// ErrInvalidErrorCorrection is returned when a QR code is requested with
	// an unknown error correction level.
	ErrInvalidErrorCorrection = errors.New("invalid error correction level")

	// ErrEmptyContent is returned when a payload formats to an empty string.
	ErrEmptyContent = errors.New("nothing to encode")

	// ErrEncodingQRCode is returned when the encoder rejects the content.
	ErrEncodingQRCode = errors.New("failed to encode qr code")
)
