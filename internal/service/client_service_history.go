// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/store"
	"github.com/MKhiriev/qr-facil/models"
)

type historyStore struct {
	repo  store.HistoryRepository
	nudge Nudger

	logger *logger.Logger
}

// NewHistoryStore returns the [HistoryStore] over repo. Every successful
// mutation nudges the sync layer.
func NewHistoryStore(repo store.HistoryRepository, nudge Nudger, logger *logger.Logger) HistoryStore {
	return &historyStore{
		repo:   repo,
		nudge:  nudge,
		logger: logger,
	}
}

func (h *historyStore) Save(ctx context.Context, code models.ClassifiedCode, scope string) (int64, bool) {
	record, err := h.repo.Save(ctx, code, scope)
	if err != nil {
		h.logger.Err(err).Str("func", "historyStore.Save").Str("type", code.Type.String()).Msg("failed to save history record")
		return 0, false
	}

	h.nudge.Nudge()
	return record.ID, true
}

func (h *historyStore) List(ctx context.Context, scope string, limit int) ([]models.HistoryRecord, bool) {
	if limit <= 0 || limit > models.DefaultHistoryLimit {
		limit = models.DefaultHistoryLimit
	}

	records, err := h.repo.List(ctx, scope, limit)
	if err != nil {
		h.logger.Err(err).Str("func", "historyStore.List").Msg("failed to list history")
		return nil, false
	}
	return records, true
}

func (h *historyStore) GetByID(ctx context.Context, id int64) (models.HistoryRecord, bool) {
	record, err := h.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrHistoryNotFound) {
			h.logger.Err(err).Str("func", "historyStore.GetByID").Int64("id", id).Msg("failed to get history record")
		}
		return models.HistoryRecord{}, false
	}
	return record, true
}

func (h *historyStore) DeleteOne(ctx context.Context, id int64) bool {
	if err := h.repo.DeleteOne(ctx, id); err != nil {
		h.logger.Err(err).Str("func", "historyStore.DeleteOne").Int64("id", id).Msg("failed to delete history record")
		return false
	}

	h.nudge.Nudge()
	return true
}

func (h *historyStore) DeleteAll(ctx context.Context, scope string) bool {
	n, err := h.repo.DeleteAll(ctx, scope)
	if err != nil {
		h.logger.Err(err).Str("func", "historyStore.DeleteAll").Msg("failed to delete history")
		return false
	}

	h.logger.Info().Str("func", "historyStore.DeleteAll").Int64("deleted", n).Msg("history cleared")
	h.nudge.Nudge()
	return true
}
