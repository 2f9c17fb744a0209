// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/store"
)

// Services groups the remote store services used by the HTTP handler.
type Services struct {
	MirrorService  MirrorService
	AppInfoService AppInfoService
}

// NewServices wires the remote store services. Mirrored records are
// validated before they reach storages.
func NewServices(storages *store.ServerStorages, version string, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, err
	}

	mirror := NewMirrorValidationService().Wrap(NewMirrorService(storages, logger))

	return &Services{
		MirrorService:  mirror,
		AppInfoService: appInfo,
	}, nil
}
