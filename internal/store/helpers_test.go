// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/qr-facil/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestClientStorages(t *testing.T) (*ClientStorages, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return newClientStorages(newSQLiteDB(db, logger.Nop()), logger.Nop()), mock
}

func newTestServerStorages(t *testing.T) (*ServerStorages, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return newServerStorages(newPostgresDB(db, logger.Nop()), logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
