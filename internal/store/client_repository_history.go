// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/models"
)

// historyRepository is the SQLite-backed implementation of
// [HistoryRepository]. Every mutation of a scoped row is recorded in the
// outbox within the same transaction.
type historyRepository struct {
	*DB
	outbox OutboxRepository
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] that records its
// mutations in outbox.
func NewHistoryRepository(db *DB, outbox OutboxRepository, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		outbox: outbox,
		logger: logger,
	}
}

// Save inserts code as a new row. The id, client side id and creation time
// are assigned here; saving the same code twice yields two rows.
func (h *historyRepository) Save(ctx context.Context, code models.ClassifiedCode, scope string) (models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	clientSideID, err := uuid.NewV7()
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("failed to generate client side id: %w", err)
	}

	parsed, err := models.MarshalPayload(code.Payload)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.Save").Str("type", code.Type.String()).Msg("failed to encode payload")
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	record := models.HistoryRecord{
		ClientSideID: clientSideID.String(),
		Type:         code.Type,
		RawData:      code.RawData,
		Payload:      code.Payload,
		Description:  code.Description,
		ActionText:   code.ActionText,
		CreatedAt:    time.Now().UTC(),
		UserScope:    scope,
	}

	query, args, err := buildInsertHistoryQuery(h.builder, record, parsed)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.Save").Msg("failed to create query")
		return models.HistoryRecord{}, err
	}

	err = h.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if record.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if scope == "" {
			return nil
		}

		_, err = h.outbox.Enqueue(ctx, tx, models.MutationHistorySave, models.HistoryRef{HistoryID: record.ID})
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Save").
			Str("client_side_id", record.ClientSideID).
			Msg("failed to save history record")
		return models.HistoryRecord{}, err
	}

	return record, nil
}

// List returns up to limit rows of scope, newest first.
func (h *historyRepository) List(ctx context.Context, scope string, limit int) ([]models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHistoryQuery(h.builder, scope, limit)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := h.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.List").Msg("failed to execute query for listing history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.HistoryRecord, 0, limit)
	for rows.Next() {
		record, scanErr := scanHistory(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "historyRepository.List").Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "historyRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (h *historyRepository) GetByID(ctx context.Context, id int64) (models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetHistoryQuery(h.builder, id)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.GetByID").Msg("failed to create query")
		return models.HistoryRecord{}, err
	}

	record, err := scanHistory(h.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.HistoryRecord{}, ErrHistoryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "historyRepository.GetByID").Int64("id", id).Msg("failed to scan history row")
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// DeleteOne removes the row with id. A scoped row leaves a delete entry in
// the outbox carrying its remote key, since the row itself is gone by the
// time the entry is replayed.
func (h *historyRepository) DeleteOne(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	keyQuery, keyArgs, err := buildGetHistoryKeyQuery(h.builder, id)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.DeleteOne").Msg("failed to create query")
		return err
	}
	deleteQuery, deleteArgs, err := buildDeleteHistoryQuery(h.builder, id)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.DeleteOne").Msg("failed to create query")
		return err
	}

	err = h.withTx(ctx, func(tx *sql.Tx) error {
		var ref models.HistoryDeleteRef
		err := tx.QueryRowContext(ctx, keyQuery, keyArgs...).Scan(&ref.ClientSideID, &ref.UserScope)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrHistoryNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if ref.UserScope == "" {
			return nil
		}

		_, err = h.outbox.Enqueue(ctx, tx, models.MutationHistoryDelete, ref)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "historyRepository.DeleteOne").Int64("id", id).Msg("failed to delete history record")
		return err
	}

	return nil
}

// DeleteAll removes every row of scope and returns the number of deleted
// rows. An empty scope wipes the whole local history and is not mirrored.
func (h *historyRepository) DeleteAll(ctx context.Context, scope string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllHistoryQuery(h.builder, scope)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.DeleteAll").Msg("failed to create query")
		return 0, err
	}

	var deleted int64
	err = h.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if deleted, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if scope == "" {
			return nil
		}

		_, err = h.outbox.Enqueue(ctx, tx, models.MutationHistoryDeleteAll, models.HistoryWipeRef{UserScope: scope})
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "historyRepository.DeleteAll").Str("user_scope", scope).Msg("failed to delete history")
		return 0, err
	}

	return deleted, nil
}
