// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/models"
)

type profileRepository struct {
	*DB
	outbox OutboxRepository
	logger *logger.Logger
}

// NewProfileRepository constructs the SQLite-backed [ProfileRepository].
func NewProfileRepository(db *DB, outbox OutboxRepository, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		outbox: outbox,
		logger: logger,
	}
}

// SetPremium stores the premium flag of scope and queues it for the remote
// store. Profiles belong to an account, so scope must not be empty.
func (p *profileRepository) SetPremium(ctx context.Context, scope string, premium bool) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if scope == "" {
		return models.UserProfile{}, ErrEmptyScope
	}

	profile := models.UserProfile{
		UserScope: scope,
		Premium:   premium,
		UpdatedAt: time.Now().UTC(),
	}

	query, args, err := buildUpsertProfileQuery(p.builder, profile)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.SetPremium").Msg("failed to create query")
		return models.UserProfile{}, err
	}

	err = p.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		_, err := p.outbox.Enqueue(ctx, tx, models.MutationProfilePremium, models.ProfileRef{UserScope: scope})
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "profileRepository.SetPremium").Str("user_scope", scope).Msg("failed to set premium flag")
		return models.UserProfile{}, err
	}

	return profile, nil
}

func (p *profileRepository) Get(ctx context.Context, scope string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProfileQuery(p.builder, scope)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.Get").Msg("failed to create query")
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	err = p.QueryRowContext(ctx, query, args...).Scan(&profile.UserScope, &profile.Premium, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "profileRepository.Get").Str("user_scope", scope).Msg("failed to scan profile row")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}
