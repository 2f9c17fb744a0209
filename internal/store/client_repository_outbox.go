// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/models"
)

type outboxRepository struct {
	*DB
	logger *logger.Logger
}

// NewOutboxRepository constructs the SQLite-backed [OutboxRepository].
func NewOutboxRepository(db *DB, logger *logger.Logger) OutboxRepository {
	return &outboxRepository{
		DB:     db,
		logger: logger,
	}
}

func (o *outboxRepository) Enqueue(ctx context.Context, tx *sql.Tx, kind models.MutationKind, ref any) (int64, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(ref)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Enqueue").Str("kind", string(kind)).Msg("failed to encode reference")
		return 0, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := buildInsertOutboxQuery(o.builder, kind, payload, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Enqueue").Msg("failed to create query")
		return 0, err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Enqueue").Str("kind", string(kind)).Msg("failed to append outbox entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "outboxRepository.Enqueue").Int64("id", id).Str("kind", string(kind)).Msg("outbox entry appended")
	return id, nil
}

// ListPending returns up to limit pending entries, oldest first.
func (o *outboxRepository) ListPending(ctx context.Context, limit int) ([]models.PendingMutation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPendingQuery(o.builder, limit)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.ListPending").Msg("failed to create query")
		return nil, err
	}

	rows, err := o.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.ListPending").Msg("failed to execute query for pending entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.PendingMutation
	for rows.Next() {
		entry, scanErr := scanMutation(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "outboxRepository.ListPending").Msg("failed to scan outbox row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "outboxRepository.ListPending").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (o *outboxRepository) MarkSynced(ctx context.Context, id int64) error {
	query, args, err := buildMarkSyncedQuery(o.builder, id, time.Now().UTC())
	if err != nil {
		return err
	}
	return o.execOne(ctx, "outboxRepository.MarkSynced", id, query, args)
}

// MarkFailed counts a failed replay. The entry stays pending.
func (o *outboxRepository) MarkFailed(ctx context.Context, id int64, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}

	query, args, err := buildMarkFailedQuery(o.builder, id, msg, time.Now().UTC())
	if err != nil {
		return err
	}
	return o.execOne(ctx, "outboxRepository.MarkFailed", id, query, args)
}

// MarkRejected records a failure no retry can fix. The entry leaves the
// pending queue with status failed.
func (o *outboxRepository) MarkRejected(ctx context.Context, id int64, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}

	query, args, err := buildMarkRejectedQuery(o.builder, id, msg, time.Now().UTC())
	if err != nil {
		return err
	}
	return o.execOne(ctx, "outboxRepository.MarkRejected", id, query, args)
}

func (o *outboxRepository) execOne(ctx context.Context, funcName string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := o.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to update outbox entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMutationNotFound
	}

	return nil
}

// PruneSynced deletes synced entries last touched before olderThan.
func (o *outboxRepository) PruneSynced(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneSyncedQuery(o.builder, olderThan.UTC())
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.PruneSynced").Msg("failed to create query")
		return 0, err
	}

	res, err := o.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.PruneSynced").Msg("failed to prune synced entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

func (o *outboxRepository) CountPending(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPendingQuery(o.builder)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.CountPending").Msg("failed to create query")
		return 0, err
	}

	var count int
	if err = o.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "outboxRepository.CountPending").Msg("failed to count pending entries")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
