// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/parser"
	"github.com/MKhiriev/qr-facil/internal/store"
	"github.com/MKhiriev/qr-facil/models"
)

type qrCodeService struct {
	repo    store.QRCodeRepository
	encoder Encoder
	nudge   Nudger

	logger *logger.Logger
}

// NewQRCodeService returns the [QRCodeService] that renders with encoder and
// keeps generated codes in repo.
func NewQRCodeService(repo store.QRCodeRepository, encoder Encoder, nudge Nudger, logger *logger.Logger) QRCodeService {
	return &qrCodeService{
		repo:    repo,
		encoder: encoder,
		nudge:   nudge,
		logger:  logger,
	}
}

// Generate formats payload in its canonical grammar, encodes it and saves
// the result. The matrix is not stored; it is rebuilt from the content.
func (s *qrCodeService) Generate(ctx context.Context, scope string, payload models.Payload, level models.ErrorCorrection) (models.QRCodeRecord, models.Matrix, error) {
	if level == "" {
		level = models.ErrorCorrectionMedium
	}
	if !level.Valid() {
		return models.QRCodeRecord{}, models.Matrix{}, fmt.Errorf("%w: %q", ErrInvalidErrorCorrection, level)
	}

	content := parser.Format(payload)
	if content == "" {
		return models.QRCodeRecord{}, models.Matrix{}, ErrEmptyContent
	}

	matrix, err := s.encoder.Encode(content, level)
	if err != nil {
		return models.QRCodeRecord{}, models.Matrix{}, fmt.Errorf("%w: %w", ErrEncodingQRCode, err)
	}

	record, err := s.repo.Save(ctx, models.QRCodeRecord{
		UserScope:       scope,
		Type:            payload.Type(),
		Content:         content,
		ErrorCorrection: level,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "qrCodeService.Generate").Msg("failed to save generated qr code")
		return models.QRCodeRecord{}, models.Matrix{}, fmt.Errorf("save qr code: %w", err)
	}

	s.nudge.Nudge()
	return record, matrix, nil
}

func (s *qrCodeService) List(ctx context.Context, scope string, limit int) ([]models.QRCodeRecord, error) {
	if limit <= 0 || limit > models.DefaultHistoryLimit {
		limit = models.DefaultHistoryLimit
	}
	return s.repo.List(ctx, scope, limit)
}
