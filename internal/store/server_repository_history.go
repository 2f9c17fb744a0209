// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/models"
)

// remoteHistoryRepository is the PostgreSQL-backed implementation of
// [RemoteHistoryRepository].
type remoteHistoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteHistoryRepository constructs a [RemoteHistoryRepository].
func NewRemoteHistoryRepository(db *DB, logger *logger.Logger) RemoteHistoryRepository {
	return &remoteHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert stores record unless a record with the same scope and client side
// id already exists. Records are immutable, so the existing one is kept.
func (r *remoteHistoryRepository) Upsert(ctx context.Context, record models.CloudHistoryRecord) error {
	log := logger.FromContext(ctx)

	if record.UserScope == "" {
		return ErrEmptyScope
	}

	query, args, err := buildUpsertRemoteHistoryQuery(r.builder, record)
	if err != nil {
		log.Err(err).Str("func", "remoteHistoryRepository.Upsert").Msg("failed to create query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "remoteHistoryRepository.Upsert").
			Str("user_scope", record.UserScope).
			Str("client_side_id", record.ClientSideID).
			Msg("failed to upsert history record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.remoteError(err))
	}

	return nil
}

// Delete removes one record. Deleting a missing record succeeds.
func (r *remoteHistoryRepository) Delete(ctx context.Context, scope, clientSideID string) error {
	log := logger.FromContext(ctx)

	if scope == "" {
		return ErrEmptyScope
	}

	query, args, err := buildDeleteRemoteHistoryQuery(r.builder, scope, clientSideID)
	if err != nil {
		log.Err(err).Str("func", "remoteHistoryRepository.Delete").Msg("failed to create query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "remoteHistoryRepository.Delete").
			Str("user_scope", scope).
			Str("client_side_id", clientSideID).
			Msg("failed to delete history record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.remoteError(err))
	}

	return nil
}

func (r *remoteHistoryRepository) DeleteAll(ctx context.Context, scope string) (int64, error) {
	log := logger.FromContext(ctx)

	if scope == "" {
		return 0, ErrEmptyScope
	}

	query, args, err := buildDeleteAllRemoteHistoryQuery(r.builder, scope)
	if err != nil {
		log.Err(err).Str("func", "remoteHistoryRepository.DeleteAll").Msg("failed to create query")
		return 0, err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "remoteHistoryRepository.DeleteAll").Str("user_scope", scope).Msg("failed to delete history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, r.remoteError(err))
	}

	return res.RowsAffected()
}
