// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/qr-facil/models"
)

func TestOutboxRepository_ListPending(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	storages, mock := newTestClientStorages(t)

	rows := sqlmock.NewRows(outboxColumns).
		AddRow(int64(1), "history.save", `{"history_id":1}`, "pending", 0, "", now, now).
		AddRow(int64(2), "history.delete", `{"client_side_id":"c","user_email":"u@x"}`, "pending", 2, "timeout", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox WHERE status = ? ORDER BY id ASC LIMIT 20")).
		WithArgs("pending").
		WillReturnRows(rows)

	entries, err := storages.OutboxRepository.ListPending(testContext(), 20)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.MutationHistorySave, entries[0].Kind)
	assert.JSONEq(t, `{"history_id":1}`, string(entries[0].Payload))
	assert.Equal(t, models.MutationPending, entries[1].Status)
	assert.Equal(t, 2, entries[1].Attempts)
	assert.Equal(t, "timeout", entries[1].LastError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSynced(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE outbox SET status = ?, updated_at = ? WHERE id = ?")

	t.Run("updated", func(t *testing.T) {
		storages, mock := newTestClientStorages(t)
		mock.ExpectExec(query).WithArgs("synced", sqlmock.AnyArg(), int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, storages.OutboxRepository.MarkSynced(testContext(), 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing entry", func(t *testing.T) {
		storages, mock := newTestClientStorages(t)
		mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))

		err := storages.OutboxRepository.MarkSynced(testContext(), 5)

		require.ErrorIs(t, err, ErrMutationNotFound)
	})
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	storages, mock := newTestClientStorages(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET attempts = attempts + 1, last_error = ?, updated_at = ? WHERE id = ?")).
		WithArgs("remote unavailable", sqlmock.AnyArg(), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := storages.OutboxRepository.MarkFailed(testContext(), 9, errors.New("remote unavailable"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkRejected(t *testing.T) {
	storages, mock := newTestClientStorages(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET status = ?, attempts = attempts + 1, last_error = ?, updated_at = ? WHERE id = ?")).
		WithArgs("failed", "bad request", sqlmock.AnyArg(), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := storages.OutboxRepository.MarkRejected(testContext(), 9, errors.New("bad request"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PruneSynced(t *testing.T) {
	storages, mock := newTestClientStorages(t)
	cutoff := time.Date(2026, 4, 24, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox WHERE status = ? AND updated_at < ?")).
		WithArgs("synced", cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	pruned, err := storages.OutboxRepository.PruneSynced(testContext(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(4), pruned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CountPending(t *testing.T) {
	t.Run("counted", func(t *testing.T) {
		storages, mock := newTestClientStorages(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM outbox WHERE status = ?")).
			WithArgs("pending").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := storages.OutboxRepository.CountPending(testContext())

		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("query failure", func(t *testing.T) {
		storages, mock := newTestClientStorages(t)
		mock.ExpectQuery("FROM outbox").WillReturnError(errors.New("no such table"))

		_, err := storages.OutboxRepository.CountPending(testContext())

		require.ErrorIs(t, err, ErrScanningRow)
	})
}
