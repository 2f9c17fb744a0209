// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrOffline is returned by every call when no remote store is configured.
	ErrOffline = errors.New("remote store is not configured")

	// ErrUnavailable is returned when the remote store cannot be reached or
	// answers 503.
	ErrUnavailable = errors.New("remote store is unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
