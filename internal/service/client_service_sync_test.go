// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/qr-facil/internal/adapter"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/mock"
	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/MKhiriev/qr-facil/internal/store"
	"github.com/MKhiriev/qr-facil/models"
)

type syncFixture struct {
	outbox       *mock.MockOutboxRepository
	history      *mock.MockHistoryRepository
	qrCodes      *mock.MockQRCodeRepository
	profiles     *mock.MockProfileRepository
	remote       *mock.MockRemoteStore
	connectivity *mock.MockConnectivity
	svc          service.SyncService
}

func newSyncFixture(t *testing.T, retention time.Duration) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		outbox:       mock.NewMockOutboxRepository(ctrl),
		history:      mock.NewMockHistoryRepository(ctrl),
		qrCodes:      mock.NewMockQRCodeRepository(ctrl),
		profiles:     mock.NewMockProfileRepository(ctrl),
		remote:       mock.NewMockRemoteStore(ctrl),
		connectivity: mock.NewMockConnectivity(ctrl),
	}

	storages := &store.ClientStorages{
		HistoryRepository: f.history,
		OutboxRepository:  f.outbox,
		QRCodeRepository:  f.qrCodes,
		ProfileRepository: f.profiles,
	}
	f.svc = service.NewSyncService(storages, f.remote, f.connectivity, retention, logger.Nop())
	return f
}

func entry(t *testing.T, id int64, kind models.MutationKind, ref any) models.PendingMutation {
	t.Helper()
	payload, err := json.Marshal(ref)
	require.NoError(t, err)
	return models.PendingMutation{ID: id, Kind: kind, Payload: payload, Status: models.MutationPending}
}

var storedURL = models.HistoryRecord{
	ID:           10,
	ClientSideID: "0190f7a2-0000-7000-8000-00000000000a",
	Type:         models.URL,
	RawData:      "https://example.com",
	Payload:      models.URLData{URL: "https://example.com"},
	Description:  "Website: https://example.com",
	ActionText:   "Open Link",
	CreatedAt:    time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
	UserScope:    "ana@example.com",
}

func TestSyncService_FlushPending_Offline(t *testing.T) {
	f := newSyncFixture(t, 0)
	ctx := context.Background()

	f.connectivity.EXPECT().Online(ctx).Return(false)
	f.outbox.EXPECT().CountPending(ctx).Return(3, nil)

	res, err := f.svc.FlushPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlushResult{Offline: true, Remaining: 3}, res)
}

func TestSyncService_FlushPending_ReplaysInOrder(t *testing.T) {
	f := newSyncFixture(t, 0)
	ctx := context.Background()

	pending := []models.PendingMutation{
		entry(t, 1, models.MutationHistorySave, models.HistoryRef{HistoryID: 10}),
		entry(t, 2, models.MutationHistoryDelete, models.HistoryDeleteRef{ClientSideID: storedURL.ClientSideID, UserScope: "ana@example.com"}),
		entry(t, 3, models.MutationHistoryDeleteAll, models.HistoryWipeRef{UserScope: "ana@example.com"}),
	}

	wantCloud, err := models.NewCloudHistoryRecord(storedURL)
	require.NoError(t, err)

	f.connectivity.EXPECT().Online(ctx).Return(true)
	gomock.InOrder(
		f.outbox.EXPECT().ListPending(ctx, 100).Return(pending, nil),
		f.history.EXPECT().GetByID(ctx, int64(10)).Return(storedURL, nil),
		f.remote.EXPECT().UpsertHistory(ctx, wantCloud).Return(nil),
		f.outbox.EXPECT().MarkSynced(ctx, int64(1)).Return(nil),
		f.remote.EXPECT().DeleteHistory(ctx, "ana@example.com", storedURL.ClientSideID).Return(nil),
		f.outbox.EXPECT().MarkSynced(ctx, int64(2)).Return(nil),
		f.remote.EXPECT().DeleteAllHistory(ctx, "ana@example.com").Return(nil),
		f.outbox.EXPECT().MarkSynced(ctx, int64(3)).Return(nil),
		f.outbox.EXPECT().CountPending(ctx).Return(0, nil),
	)

	res, err := f.svc.FlushPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlushResult{Synced: 3}, res)
}

func TestSyncService_FlushPending_StopsAtFirstFailure(t *testing.T) {
	f := newSyncFixture(t, 0)
	ctx := context.Background()

	pending := []models.PendingMutation{
		entry(t, 1, models.MutationQRCodeSave, models.QRCodeRef{QRCodeID: 4}),
		entry(t, 2, models.MutationProfilePremium, models.ProfileRef{UserScope: "ana@example.com"}),
	}
	code := models.QRCodeRecord{ID: 4, ClientSideID: "c4", UserScope: "ana@example.com", Type: models.Text, Content: "hola", ErrorCorrection: models.ErrorCorrectionLow}
	unavailable := errors.Join(adapter.ErrUnavailable, errors.New("dial tcp: connection refused"))

	f.connectivity.EXPECT().Online(ctx).Return(true)
	gomock.InOrder(
		f.outbox.EXPECT().ListPending(ctx, 100).Return(pending, nil),
		f.qrCodes.EXPECT().GetByID(ctx, int64(4)).Return(code, nil),
		f.remote.EXPECT().SaveQRCode(ctx, models.NewCloudQRCode(code)).Return(unavailable),
		f.outbox.EXPECT().MarkFailed(ctx, int64(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, cause error) error {
				assert.ErrorIs(t, cause, adapter.ErrUnavailable)
				return nil
			}),
		f.outbox.EXPECT().CountPending(ctx).Return(2, nil),
	)

	res, err := f.svc.FlushPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlushResult{Synced: 0, Remaining: 2}, res)
}

func TestSyncService_FlushPending_MissingLocalRowIsSynced(t *testing.T) {
	f := newSyncFixture(t, 0)
	ctx := context.Background()

	pending := []models.PendingMutation{
		entry(t, 1, models.MutationHistorySave, models.HistoryRef{HistoryID: 99}),
		entry(t, 2, models.MutationProfilePremium, models.ProfileRef{UserScope: "ana@example.com"}),
	}
	profile := models.UserProfile{UserScope: "ana@example.com", Premium: true, UpdatedAt: storedURL.CreatedAt}

	f.connectivity.EXPECT().Online(ctx).Return(true)
	gomock.InOrder(
		f.outbox.EXPECT().ListPending(ctx, 100).Return(pending, nil),
		f.history.EXPECT().GetByID(ctx, int64(99)).Return(models.HistoryRecord{}, store.ErrHistoryNotFound),
		f.outbox.EXPECT().MarkSynced(ctx, int64(1)).Return(nil),
		f.profiles.EXPECT().Get(ctx, "ana@example.com").Return(profile, nil),
		f.remote.EXPECT().UpdatePremium(ctx, models.CloudProfile{UserScope: "ana@example.com", Premium: true, UpdatedAt: storedURL.CreatedAt}).Return(nil),
		f.outbox.EXPECT().MarkSynced(ctx, int64(2)).Return(nil),
		f.outbox.EXPECT().CountPending(ctx).Return(0, nil),
	)

	res, err := f.svc.FlushPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Synced)
}

func TestSyncService_FlushPending_SkipsPermanentFailures(t *testing.T) {
	f := newSyncFixture(t, 0)
	ctx := context.Background()

	pending := []models.PendingMutation{
		{ID: 1, Kind: "history.archive", Payload: json.RawMessage(`{}`)},
		{ID: 2, Kind: models.MutationHistoryDelete, Payload: json.RawMessage(`not json`)},
		entry(t, 3, models.MutationHistoryDeleteAll, models.HistoryWipeRef{UserScope: "ana@example.com"}),
		entry(t, 4, models.MutationHistoryDelete, models.HistoryDeleteRef{ClientSideID: "gone", UserScope: "ana@example.com"}),
	}

	f.connectivity.EXPECT().Online(ctx).Return(true)
	gomock.InOrder(
		f.outbox.EXPECT().ListPending(ctx, 100).Return(pending, nil),
		f.outbox.EXPECT().MarkRejected(ctx, int64(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, cause error) error {
				assert.ErrorIs(t, cause, models.ErrUnknownMutationKind)
				return nil
			}),
		f.outbox.EXPECT().MarkRejected(ctx, int64(2), gomock.Any()).Return(nil),
		f.remote.EXPECT().DeleteAllHistory(ctx, "ana@example.com").Return(adapter.ErrBadRequest),
		f.outbox.EXPECT().MarkRejected(ctx, int64(3), gomock.Any()).Return(nil),
		f.remote.EXPECT().DeleteHistory(ctx, "ana@example.com", "gone").Return(adapter.ErrNotFound),
		f.outbox.EXPECT().MarkSynced(ctx, int64(4)).Return(nil),
		f.outbox.EXPECT().CountPending(ctx).Return(0, nil),
	)

	res, err := f.svc.FlushPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlushResult{Synced: 1, Rejected: 3}, res)
}

func TestSyncService_FlushPending_RejectedBatchDoesNotBlockQueue(t *testing.T) {
	f := newSyncFixture(t, 0)
	ctx := context.Background()

	rejected := make([]models.PendingMutation, 0, 100)
	for id := int64(1); id <= 100; id++ {
		rejected = append(rejected, entry(t, id, models.MutationHistoryDeleteAll, models.HistoryWipeRef{UserScope: "ana@example.com"}))
	}
	valid := entry(t, 101, models.MutationHistorySave, models.HistoryRef{HistoryID: 10})
	wantCloud, err := models.NewCloudHistoryRecord(storedURL)
	require.NoError(t, err)

	f.connectivity.EXPECT().Online(ctx).Return(true)
	f.outbox.EXPECT().ListPending(ctx, 100).Return(rejected, nil)
	f.remote.EXPECT().DeleteAllHistory(ctx, "ana@example.com").Return(adapter.ErrBadRequest).Times(100)
	f.outbox.EXPECT().MarkRejected(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(100)
	f.outbox.EXPECT().ListPending(ctx, 100).Return([]models.PendingMutation{valid}, nil)
	f.history.EXPECT().GetByID(ctx, int64(10)).Return(storedURL, nil)
	f.remote.EXPECT().UpsertHistory(ctx, wantCloud).Return(nil)
	f.outbox.EXPECT().MarkSynced(ctx, int64(101)).Return(nil)
	f.outbox.EXPECT().CountPending(ctx).Return(0, nil)

	res, err := f.svc.FlushPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlushResult{Synced: 1, Rejected: 100}, res)
}

func TestSyncService_FlushPending_StorageErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		f := newSyncFixture(t, 0)
		f.connectivity.EXPECT().Online(ctx).Return(true)
		f.outbox.EXPECT().ListPending(ctx, 100).Return(nil, store.ErrExecutingQuery)

		_, err := f.svc.FlushPending(ctx)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("mark synced", func(t *testing.T) {
		f := newSyncFixture(t, 0)
		f.connectivity.EXPECT().Online(ctx).Return(true)
		f.outbox.EXPECT().ListPending(ctx, 100).Return([]models.PendingMutation{
			entry(t, 7, models.MutationHistoryDeleteAll, models.HistoryWipeRef{UserScope: "ana@example.com"}),
		}, nil)
		f.remote.EXPECT().DeleteAllHistory(ctx, "ana@example.com").Return(nil)
		f.outbox.EXPECT().MarkSynced(ctx, int64(7)).Return(store.ErrMutationNotFound)

		_, err := f.svc.FlushPending(ctx)
		assert.ErrorIs(t, err, store.ErrMutationNotFound)
	})
}

func TestSyncService_Drain_Offline(t *testing.T) {
	f := newSyncFixture(t, 0)
	ctx := context.Background()

	f.connectivity.EXPECT().Online(ctx).Return(false)
	f.outbox.EXPECT().CountPending(ctx).Return(0, nil)

	assert.NoError(t, f.svc.Drain(ctx))
}

func TestSyncService_Nudge_DoesNotBlock(t *testing.T) {
	f := newSyncFixture(t, 0)

	done := make(chan struct{})
	go func() {
		f.svc.Nudge()
		f.svc.Nudge()
		f.svc.Nudge()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Nudge blocked")
	}

	select {
	case <-f.svc.Nudges():
	default:
		t.Fatal("expected a pending nudge")
	}

	select {
	case <-f.svc.Nudges():
		t.Fatal("nudges must coalesce")
	default:
	}
}

func TestSyncService_Prune(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes entries older than retention", func(t *testing.T) {
		f := newSyncFixture(t, time.Hour)
		before := time.Now().UTC().Add(-time.Hour)

		f.outbox.EXPECT().PruneSynced(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, olderThan time.Time) (int64, error) {
				assert.WithinDuration(t, before, olderThan, 5*time.Second)
				return 4, nil
			})

		n, err := f.svc.Prune(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("zero retention keeps everything", func(t *testing.T) {
		f := newSyncFixture(t, 0)

		n, err := f.svc.Prune(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestSyncService_Pending(t *testing.T) {
	f := newSyncFixture(t, 0)
	f.outbox.EXPECT().CountPending(gomock.Any()).Return(5, nil)

	n, err := f.svc.Pending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
