// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = MigrateServer(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := MigrateClient(context.Background(), db)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{"client", "server"} {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		require.NoError(t, err)
		assert.NotEmpty(t, files, dir)
	}
}
