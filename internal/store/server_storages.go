// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/migrations"
)

// ServerStorages groups the repositories of the remote store.
type ServerStorages struct {
	HistoryRepository RemoteHistoryRepository
	QRCodeRepository  RemoteQRCodeRepository
	ProfileRepository RemoteProfileRepository

	db *DB
}

// NewServerStorages connects to PostgreSQL, applies pending migrations and
// wires the repositories.
func NewServerStorages(ctx context.Context, cfg *config.ServerConfig, logger *logger.Logger) (*ServerStorages, error) {
	logger.Info().Str("func", "NewServerStorages").Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.MigrateServer(ctx, db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newServerStorages(db, logger), nil
}

func newServerStorages(db *DB, logger *logger.Logger) *ServerStorages {
	return &ServerStorages{
		HistoryRepository: NewRemoteHistoryRepository(db, logger),
		QRCodeRepository:  NewRemoteQRCodeRepository(db, logger),
		ProfileRepository: NewRemoteProfileRepository(db, logger),
		db:                db,
	}
}

// Ping reports whether the database is reachable.
func (s *ServerStorages) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// Close releases the database connection pool.
func (s *ServerStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
