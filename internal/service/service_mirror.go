// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/store"
	"github.com/MKhiriev/qr-facil/models"
)

type mirrorService struct {
	history  store.RemoteHistoryRepository
	qrCodes  store.RemoteQRCodeRepository
	profiles store.RemoteProfileRepository

	logger *logger.Logger
}

// NewMirrorService returns the [MirrorService] backed by the remote store
// repositories.
func NewMirrorService(storages *store.ServerStorages, logger *logger.Logger) MirrorService {
	return &mirrorService{
		history:  storages.HistoryRepository,
		qrCodes:  storages.QRCodeRepository,
		profiles: storages.ProfileRepository,
		logger:   logger,
	}
}

func (s *mirrorService) UpsertHistory(ctx context.Context, record models.CloudHistoryRecord) error {
	if err := s.history.Upsert(ctx, record); err != nil {
		return fmt.Errorf("upsert history record: %w", err)
	}
	return nil
}

func (s *mirrorService) DeleteHistory(ctx context.Context, scope, clientSideID string) error {
	if err := s.history.Delete(ctx, scope, clientSideID); err != nil {
		return fmt.Errorf("delete history record: %w", err)
	}
	return nil
}

func (s *mirrorService) DeleteAllHistory(ctx context.Context, scope string) (int64, error) {
	n, err := s.history.DeleteAll(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("delete history: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "mirrorService.DeleteAllHistory").
		Int64("deleted", n).
		Msg("history wiped")

	return n, nil
}

func (s *mirrorService) SaveQRCode(ctx context.Context, code models.CloudQRCode) error {
	if err := s.qrCodes.Upsert(ctx, code); err != nil {
		return fmt.Errorf("save qr code: %w", err)
	}
	return nil
}

func (s *mirrorService) UpdatePremium(ctx context.Context, profile models.CloudProfile) error {
	if err := s.profiles.UpsertPremium(ctx, profile); err != nil {
		return fmt.Errorf("update premium flag: %w", err)
	}
	return nil
}
