// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/models"
)

func newSQLiteClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "history.db") + "?_foreign_keys=on"

	storages, err := NewClientStorages(testContext(), config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

func TestClientStorages_SQLiteHistory(t *testing.T) {
	ctx := testContext()
	storages := newSQLiteClientStorages(t)
	repo := storages.HistoryRepository

	first, err := repo.Save(ctx, urlCode, "alice")
	require.NoError(t, err)
	second, err := repo.Save(ctx, urlCode, "alice")
	require.NoError(t, err)
	_, err = repo.Save(ctx, urlCode, "bob")
	require.NoError(t, err)
	_, err = repo.Save(ctx, urlCode, "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.NotEqual(t, first.ClientSideID, second.ClientSideID)

	list, err := repo.List(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, models.URLData{URL: "https://example.com"}, list[0].Payload)

	deleted, err := repo.DeleteAll(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	left, err := repo.List(ctx, "alice", 10)
	require.NoError(t, err)
	assert.Empty(t, left)

	bob, err := repo.List(ctx, "bob", 10)
	require.NoError(t, err)
	assert.Len(t, bob, 1)

	all, err := repo.List(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClientStorages_SQLiteOutboxRejected(t *testing.T) {
	ctx := testContext()
	storages := newSQLiteClientStorages(t)

	_, err := storages.HistoryRepository.Save(ctx, urlCode, "alice")
	require.NoError(t, err)
	_, err = storages.HistoryRepository.Save(ctx, urlCode, "alice")
	require.NoError(t, err)

	pending, err := storages.OutboxRepository.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	require.NoError(t, storages.OutboxRepository.MarkRejected(ctx, pending[0].ID, errors.New("bad request")))

	left, err := storages.OutboxRepository.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, pending[1].ID, left[0].ID)

	count, err := storages.OutboxRepository.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
