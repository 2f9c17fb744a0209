// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParam is reported when a path segment cannot be unescaped.
	ErrInvalidPathParam = errors.New("invalid path parameter")
)

// ErrClientIDMismatch is reported when the record body names a different
// client-side id than the request path.
var ErrClientIDMismatch = errors.New("client id does not match the record")
