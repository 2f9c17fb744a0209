// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/qr-facil/models"
)

var cloudRecord = models.CloudHistoryRecord{
	ClientSideID: "0190a3c4-0000-7000-8000-000000000001",
	UserScope:    "user@example.com",
	Type:         models.Phone,
	RawData:      "tel:+15551234567",
	ParsedData:   []byte(`{"number":"+15551234567"}`),
	Description:  "Phone: +15551234567",
	ActionText:   "Call",
	CreatedAt:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
}

func TestRemoteHistoryRepository_Upsert(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO history (client_side_id,user_scope,type,raw_data,parsed_data,description,action_text,created_at) " +
		"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT (user_scope, client_side_id) DO NOTHING")

	tests := []struct {
		name    string
		record  models.CloudHistoryRecord
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:   "inserted",
			record: cloudRecord,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WithArgs(cloudRecord.ClientSideID, cloudRecord.UserScope, "phone", cloudRecord.RawData,
						`{"number":"+15551234567"}`, cloudRecord.Description, cloudRecord.ActionText, cloudRecord.CreatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "replay is a no-op",
			record: cloudRecord,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name:    "empty scope",
			record:  models.CloudHistoryRecord{ClientSideID: "x"},
			setup:   func(mock sqlmock.Sqlmock) {},
			wantErr: ErrEmptyScope,
		},
		{
			name:   "check violation",
			record: cloudRecord,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WillReturnError(pgError(pgerrcode.CheckViolation))
			},
			wantErr: ErrInvalidRecord,
		},
		{
			name:   "connection failure",
			record: cloudRecord,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storages, mock := newTestServerStorages(t)
			tt.setup(mock)

			err := storages.HistoryRepository.Upsert(testContext(), tt.record)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRemoteHistoryRepository_Delete(t *testing.T) {
	storages, mock := newTestServerStorages(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM history WHERE client_side_id = $1 AND user_scope = $2")).
		WithArgs("cid", "user@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, storages.HistoryRepository.Delete(testContext(), "user@example.com", "cid"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteHistoryRepository_DeleteAll(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		storages, mock := newTestServerStorages(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM history WHERE user_scope = $1")).
			WithArgs("user@example.com").
			WillReturnResult(sqlmock.NewResult(0, 7))

		deleted, err := storages.HistoryRepository.DeleteAll(testContext(), "user@example.com")

		require.NoError(t, err)
		assert.Equal(t, int64(7), deleted)
	})

	t.Run("empty scope never wipes the table", func(t *testing.T) {
		storages, mock := newTestServerStorages(t)

		_, err := storages.HistoryRepository.DeleteAll(testContext(), "")

		require.ErrorIs(t, err, ErrEmptyScope)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unclassified failure", func(t *testing.T) {
		storages, mock := newTestServerStorages(t)
		mock.ExpectExec("DELETE FROM history").WillReturnError(errors.New("boom"))

		_, err := storages.HistoryRepository.DeleteAll(testContext(), "user@example.com")

		require.ErrorIs(t, err, ErrExecutingStatement)
		assert.NotErrorIs(t, err, ErrInvalidRecord)
	})
}

func TestRemoteQRCodeRepository_Upsert(t *testing.T) {
	storages, mock := newTestServerStorages(t)
	code := models.CloudQRCode{
		ClientSideID:    "cid",
		UserScope:       "user@example.com",
		Type:            models.Text,
		Content:         "hello",
		ErrorCorrection: models.ErrorCorrectionLow,
		CreatedAt:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO qr_codes")+".*"+regexp.QuoteMeta("ON CONFLICT (user_scope, client_side_id) DO NOTHING")).
		WithArgs("cid", "user@example.com", "text", "hello", "L", code.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, storages.QRCodeRepository.Upsert(testContext(), code))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteProfileRepository_UpsertPremium(t *testing.T) {
	storages, mock := newTestServerStorages(t)
	profile := models.CloudProfile{
		UserScope: "user@example.com",
		Premium:   true,
		UpdatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	mock.ExpectExec(regexp.QuoteMeta("WHERE profiles.updated_at < EXCLUDED.updated_at")).
		WithArgs("user@example.com", true, profile.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, storages.ProfileRepository.UpsertPremium(testContext(), profile))
	assert.NoError(t, mock.ExpectationsWereMet())
}
