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

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer. All of them share one SQLite
// connection, so outbox entries commit in the same transaction as the rows
// they describe.
type ClientStorages struct {
	HistoryRepository HistoryRepository
	OutboxRepository  OutboxRepository
	QRCodeRepository  QRCodeRepository
	ProfileRepository ProfileRepository

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DSN, creating the
// file when missing, applies pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := migrations.MigrateClient(ctx, db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	outbox := NewOutboxRepository(db, logger)

	return &ClientStorages{
		HistoryRepository: NewHistoryRepository(db, outbox, logger),
		OutboxRepository:  outbox,
		QRCodeRepository:  NewQRCodeRepository(db, outbox, logger),
		ProfileRepository: NewProfileRepository(db, outbox, logger),
		db:                db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
