// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/models"
)

type remoteProfileRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteProfileRepository constructs a [RemoteProfileRepository].
func NewRemoteProfileRepository(db *DB, logger *logger.Logger) RemoteProfileRepository {
	return &remoteProfileRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertPremium stores the flag unless the stored one is newer.
func (r *remoteProfileRepository) UpsertPremium(ctx context.Context, profile models.CloudProfile) error {
	log := logger.FromContext(ctx)

	if profile.UserScope == "" {
		return ErrEmptyScope
	}

	query, args, err := buildUpsertRemoteProfileQuery(r.builder, profile)
	if err != nil {
		log.Err(err).Str("func", "remoteProfileRepository.UpsertPremium").Msg("failed to create query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "remoteProfileRepository.UpsertPremium").
			Str("user_scope", profile.UserScope).
			Msg("failed to upsert profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.remoteError(err))
	}

	return nil
}
