// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/qr-facil/internal/adapter"
	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/store"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	HistoryStore   HistoryStore
	SyncService    SyncService
	QRCodeService  QRCodeService
	ProfileService ProfileService
	SyncWorker     *SyncWorker
}

// NewClientServices wires the client services over the local storages and
// the remote store. Local writes nudge the sync service.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, encoder Encoder, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	connectivity := adapter.NewConnectivity(remote, cfg.Adapter.PingTimeout, logger)
	syncSvc := NewSyncService(storages, remote, connectivity, cfg.Workers.OutboxRetention, logger)

	return &ClientServices{
		HistoryStore:   NewHistoryStore(storages.HistoryRepository, syncSvc, logger),
		SyncService:    syncSvc,
		QRCodeService:  NewQRCodeService(storages.QRCodeRepository, encoder, syncSvc, logger),
		ProfileService: NewProfileService(storages.ProfileRepository, syncSvc, logger),
		SyncWorker:     NewSyncWorker(syncSvc, cfg.Workers.SyncInterval, logger),
	}
}
