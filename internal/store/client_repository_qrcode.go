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

type qrCodeRepository struct {
	*DB
	outbox OutboxRepository
	logger *logger.Logger
}

// NewQRCodeRepository constructs the SQLite-backed [QRCodeRepository].
func NewQRCodeRepository(db *DB, outbox OutboxRepository, logger *logger.Logger) QRCodeRepository {
	return &qrCodeRepository{
		DB:     db,
		outbox: outbox,
		logger: logger,
	}
}

// Save inserts code and assigns its id, client side id and creation time.
func (r *qrCodeRepository) Save(ctx context.Context, code models.QRCodeRecord) (models.QRCodeRecord, error) {
	log := logger.FromContext(ctx)

	clientSideID, err := uuid.NewV7()
	if err != nil {
		return models.QRCodeRecord{}, fmt.Errorf("failed to generate client side id: %w", err)
	}
	code.ClientSideID = clientSideID.String()
	code.CreatedAt = time.Now().UTC()

	query, args, err := buildInsertQRCodeQuery(r.builder, code)
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.Save").Msg("failed to create query")
		return models.QRCodeRecord{}, err
	}

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if code.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if code.UserScope == "" {
			return nil
		}

		_, err = r.outbox.Enqueue(ctx, tx, models.MutationQRCodeSave, models.QRCodeRef{QRCodeID: code.ID})
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.Save").Str("client_side_id", code.ClientSideID).Msg("failed to save qr code")
		return models.QRCodeRecord{}, err
	}

	return code, nil
}

func (r *qrCodeRepository) GetByID(ctx context.Context, id int64) (models.QRCodeRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetQRCodeQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.GetByID").Msg("failed to create query")
		return models.QRCodeRecord{}, err
	}

	code, err := scanQRCode(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.QRCodeRecord{}, ErrQRCodeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.GetByID").Int64("id", id).Msg("failed to scan qr code row")
		return models.QRCodeRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return code, nil
}

func (r *qrCodeRepository) List(ctx context.Context, scope string, limit int) ([]models.QRCodeRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQRCodesQuery(r.builder, scope, limit)
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "qrCodeRepository.List").Msg("failed to execute query for listing qr codes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var codes []models.QRCodeRecord
	for rows.Next() {
		code, scanErr := scanQRCode(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "qrCodeRepository.List").Msg("failed to scan qr code row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		codes = append(codes, code)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return codes, nil
}
