// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/qr-facil/internal/adapter"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/store"
	"github.com/MKhiriev/qr-facil/models"
)

// syncBatchSize is the number of outbox entries read per query.
const syncBatchSize = 100

// errPermanent marks replay failures that no retry can fix.
var errPermanent = errors.New("permanent replay failure")

type syncService struct {
	outbox   store.OutboxRepository
	history  store.HistoryRepository
	qrCodes  store.QRCodeRepository
	profiles store.ProfileRepository

	remote       adapter.RemoteStore
	connectivity adapter.Connectivity
	retention    time.Duration

	// mu serializes replays started by the worker and by the user.
	mu     sync.Mutex
	nudges chan struct{}

	logger *logger.Logger
}

// NewSyncService returns the [SyncService] replaying storages' outbox
// against remote. Entries synced more than retention ago are pruned.
func NewSyncService(storages *store.ClientStorages, remote adapter.RemoteStore, connectivity adapter.Connectivity, retention time.Duration, logger *logger.Logger) SyncService {
	return &syncService{
		outbox:       storages.OutboxRepository,
		history:      storages.HistoryRepository,
		qrCodes:      storages.QRCodeRepository,
		profiles:     storages.ProfileRepository,
		remote:       remote,
		connectivity: connectivity,
		retention:    retention,
		nudges:       make(chan struct{}, 1),
		logger:       logger,
	}
}

func (s *syncService) Drain(ctx context.Context) error {
	_, err := s.FlushPending(ctx)
	return err
}

// FlushPending replays pending entries in id order. The first transient
// failure is recorded on its entry and stops the replay, so later mutations
// of the same record are never applied before earlier ones. Entries that can
// never succeed are moved to the failed status and skipped.
func (s *syncService) FlushPending(ctx context.Context) (models.FlushResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.With().Str("func", "syncService.FlushPending").Logger()

	var result models.FlushResult
	if !s.connectivity.Online(ctx) {
		result.Offline = true
		pending, err := s.outbox.CountPending(ctx)
		if err != nil {
			return result, fmt.Errorf("count pending entries: %w", err)
		}
		result.Remaining = pending
		log.Debug().Int("pending", pending).Msg("remote store is offline, replay skipped")
		return result, nil
	}

	for {
		batch, err := s.outbox.ListPending(ctx, syncBatchSize)
		if err != nil {
			return result, fmt.Errorf("list pending entries: %w", err)
		}

		stopped := false
		for _, m := range batch {
			if err = s.replay(ctx, m); err != nil {
				if errors.Is(err, errPermanent) {
					if markErr := s.outbox.MarkRejected(ctx, m.ID, err); markErr != nil {
						return result, fmt.Errorf("record rejection of entry %d: %w", m.ID, markErr)
					}
					log.Error().Err(err).Int64("id", m.ID).Str("kind", string(m.Kind)).Msg("outbox entry cannot be replayed, skipped")
					result.Rejected++
					continue
				}
				if markErr := s.outbox.MarkFailed(ctx, m.ID, err); markErr != nil {
					return result, fmt.Errorf("record failure of entry %d: %w", m.ID, markErr)
				}
				log.Warn().Err(err).Int64("id", m.ID).Str("kind", string(m.Kind)).Msg("replay failed, will retry")
				stopped = true
				break
			}

			if err = s.outbox.MarkSynced(ctx, m.ID); err != nil {
				return result, fmt.Errorf("mark entry %d synced: %w", m.ID, err)
			}
			result.Synced++
		}

		if stopped || len(batch) < syncBatchSize {
			break
		}
	}

	pending, err := s.outbox.CountPending(ctx)
	if err != nil {
		return result, fmt.Errorf("count pending entries: %w", err)
	}
	result.Remaining = pending

	log.Debug().Int("synced", result.Synced).Int("rejected", result.Rejected).Int("remaining", result.Remaining).Msg("outbox replayed")
	return result, nil
}

// replay sends one entry. The cloud record is re-derived from the local row;
// a row deleted in the meantime has nothing left to send.
func (s *syncService) replay(ctx context.Context, m models.PendingMutation) error {
	switch m.Kind {
	case models.MutationHistorySave:
		var ref models.HistoryRef
		if err := decodeRef(m, &ref); err != nil {
			return err
		}
		record, err := s.history.GetByID(ctx, ref.HistoryID)
		if errors.Is(err, store.ErrHistoryNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		cloud, err := models.NewCloudHistoryRecord(record)
		if err != nil {
			return fmt.Errorf("%w: %w", errPermanent, err)
		}
		return remoteError(s.remote.UpsertHistory(ctx, cloud))

	case models.MutationHistoryDelete:
		var ref models.HistoryDeleteRef
		if err := decodeRef(m, &ref); err != nil {
			return err
		}
		err := s.remote.DeleteHistory(ctx, ref.UserScope, ref.ClientSideID)
		if errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		return remoteError(err)

	case models.MutationHistoryDeleteAll:
		var ref models.HistoryWipeRef
		if err := decodeRef(m, &ref); err != nil {
			return err
		}
		return remoteError(s.remote.DeleteAllHistory(ctx, ref.UserScope))

	case models.MutationQRCodeSave:
		var ref models.QRCodeRef
		if err := decodeRef(m, &ref); err != nil {
			return err
		}
		code, err := s.qrCodes.GetByID(ctx, ref.QRCodeID)
		if errors.Is(err, store.ErrQRCodeNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return remoteError(s.remote.SaveQRCode(ctx, models.NewCloudQRCode(code)))

	case models.MutationProfilePremium:
		var ref models.ProfileRef
		if err := decodeRef(m, &ref); err != nil {
			return err
		}
		profile, err := s.profiles.Get(ctx, ref.UserScope)
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return remoteError(s.remote.UpdatePremium(ctx, models.CloudProfile(profile)))
	}

	return fmt.Errorf("%w: %w: %q", errPermanent, models.ErrUnknownMutationKind, m.Kind)
}

func (s *syncService) Pending(ctx context.Context) (int, error) {
	return s.outbox.CountPending(ctx)
}

func (s *syncService) Prune(ctx context.Context) (int64, error) {
	if s.retention <= 0 {
		return 0, nil
	}

	n, err := s.outbox.PruneSynced(ctx, time.Now().UTC().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("prune synced entries: %w", err)
	}
	return n, nil
}

func (s *syncService) Nudge() {
	select {
	case s.nudges <- struct{}{}:
	default:
	}
}

func (s *syncService) Nudges() <-chan struct{} {
	return s.nudges
}

func decodeRef(m models.PendingMutation, ref any) error {
	if err := json.Unmarshal(m.Payload, ref); err != nil {
		return fmt.Errorf("%w: decode %s entry: %w", errPermanent, m.Kind, err)
	}
	return nil
}

// remoteError marks rejections of the record itself as permanent. Transport
// and server failures stay retryable.
func remoteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapter.ErrBadRequest) || errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("%w: %w", errPermanent, err)
	}
	return err
}
