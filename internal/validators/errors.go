// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserScope       = errors.New("invalid user scope")
	ErrInvalidClientSideID    = errors.New("invalid client side id")
	ErrInvalidType            = errors.New("invalid code type")
	ErrInvalidParsedData      = errors.New("parsed data does not match the code type")
	ErrEmptyContent           = errors.New("content is required")
	ErrInvalidErrorCorrection = errors.New("invalid error correction level")
	ErrMissingTimestamp       = errors.New("timestamp is required")
)
