// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/MKhiriev/qr-facil/internal/store"
)

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidPathParam, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrScopeMismatch, http.StatusBadRequest},
	{ErrClientIDMismatch, http.StatusBadRequest},
	{service.ErrEmptyScope, http.StatusBadRequest},
	{store.ErrEmptyScope, http.StatusBadRequest},
	{store.ErrInvalidRecord, http.StatusBadRequest},
	{store.ErrEncodingPayload, http.StatusBadRequest},

	{store.ErrHistoryNotFound, http.StatusNotFound},
	{store.ErrQRCodeNotFound, http.StatusNotFound},
	{store.ErrProfileNotFound, http.StatusNotFound},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
