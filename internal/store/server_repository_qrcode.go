// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/models"
)

type remoteQRCodeRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteQRCodeRepository constructs a [RemoteQRCodeRepository].
func NewRemoteQRCodeRepository(db *DB, logger *logger.Logger) RemoteQRCodeRepository {
	return &remoteQRCodeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *remoteQRCodeRepository) Upsert(ctx context.Context, code models.CloudQRCode) error {
	log := logger.FromContext(ctx)

	if code.UserScope == "" {
		return ErrEmptyScope
	}

	query, args, err := buildUpsertRemoteQRCodeQuery(r.builder, code)
	if err != nil {
		log.Err(err).Str("func", "remoteQRCodeRepository.Upsert").Msg("failed to create query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "remoteQRCodeRepository.Upsert").
			Str("user_scope", code.UserScope).
			Str("client_side_id", code.ClientSideID).
			Msg("failed to upsert qr code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.remoteError(err))
	}

	return nil
}
