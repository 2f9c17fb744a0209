// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/qr-facil/models"
)

const (
	historyTable  = "history"
	outboxTable   = "outbox"
	qrCodesTable  = "qr_codes"
	profilesTable = "profiles"
)

var (
	historyColumns = []string{
		"id", "client_side_id", "user_scope", "type", "raw_data",
		"parsed_data", "description", "action_text", "created_at",
	}
	outboxColumns = []string{
		"id", "kind", "payload", "status", "attempts", "last_error", "created_at", "updated_at",
	}
	qrCodeColumns = []string{
		"id", "client_side_id", "user_scope", "type", "content", "error_correction", "created_at",
	}
	profileColumns = []string{"user_scope", "premium", "updated_at"}
)

func buildInsertHistoryQuery(b sq.StatementBuilderType, r models.HistoryRecord, parsed []byte) (string, []any, error) {
	query, args, err := b.Insert(historyTable).
		Columns(historyColumns[1:]...).
		Values(r.ClientSideID, r.UserScope, string(r.Type), r.RawData, string(parsed), r.Description, r.ActionText, r.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListHistoryQuery selects the newest rows first. An empty scope lists
// every row regardless of owner.
func buildListHistoryQuery(b sq.StatementBuilderType, scope string, limit int) (string, []any, error) {
	q := b.Select(historyColumns...).From(historyTable)
	if scope != "" {
		q = q.Where(sq.Eq{"user_scope": scope})
	}

	query, args, err := q.OrderBy("created_at DESC", "id DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetHistoryQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(historyColumns...).From(historyTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetHistoryKeyQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select("client_side_id", "user_scope").From(historyTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteHistoryQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(historyTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteAllHistoryQuery deletes the rows of one scope. An empty scope
// deletes every row.
func buildDeleteAllHistoryQuery(b sq.StatementBuilderType, scope string) (string, []any, error) {
	q := b.Delete(historyTable)
	if scope != "" {
		q = q.Where(sq.Eq{"user_scope": scope})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertOutboxQuery(b sq.StatementBuilderType, kind models.MutationKind, payload []byte, now time.Time) (string, []any, error) {
	query, args, err := b.Insert(outboxTable).
		Columns("kind", "payload", "status", "attempts", "last_error", "created_at", "updated_at").
		Values(string(kind), string(payload), string(models.MutationPending), 0, "", now, now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListPendingQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	query, args, err := b.Select(outboxColumns...).From(outboxTable).
		Where(sq.Eq{"status": string(models.MutationPending)}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildMarkSyncedQuery(b sq.StatementBuilderType, id int64, now time.Time) (string, []any, error) {
	query, args, err := b.Update(outboxTable).
		Set("status", string(models.MutationSynced)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildMarkFailedQuery(b sq.StatementBuilderType, id int64, cause string, now time.Time) (string, []any, error) {
	query, args, err := b.Update(outboxTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", cause).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildMarkRejectedQuery(b sq.StatementBuilderType, id int64, cause string, now time.Time) (string, []any, error) {
	query, args, err := b.Update(outboxTable).
		Set("status", string(models.MutationFailed)).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", cause).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildPruneSyncedQuery(b sq.StatementBuilderType, olderThan time.Time) (string, []any, error) {
	query, args, err := b.Delete(outboxTable).
		Where(sq.Eq{"status": string(models.MutationSynced)}).
		Where(sq.Lt{"updated_at": olderThan}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountPendingQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").From(outboxTable).
		Where(sq.Eq{"status": string(models.MutationPending)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertQRCodeQuery(b sq.StatementBuilderType, q models.QRCodeRecord) (string, []any, error) {
	query, args, err := b.Insert(qrCodesTable).
		Columns(qrCodeColumns[1:]...).
		Values(q.ClientSideID, q.UserScope, string(q.Type), q.Content, string(q.ErrorCorrection), q.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetQRCodeQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(qrCodeColumns...).From(qrCodesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListQRCodesQuery(b sq.StatementBuilderType, scope string, limit int) (string, []any, error) {
	q := b.Select(qrCodeColumns...).From(qrCodesTable)
	if scope != "" {
		q = q.Where(sq.Eq{"user_scope": scope})
	}

	query, args, err := q.OrderBy("created_at DESC", "id DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertProfileQuery(b sq.StatementBuilderType, p models.UserProfile) (string, []any, error) {
	query, args, err := b.Insert(profilesTable).
		Columns(profileColumns...).
		Values(p.UserScope, p.Premium, p.UpdatedAt).
		Suffix("ON CONFLICT (user_scope) DO UPDATE SET premium = excluded.premium, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetProfileQuery(b sq.StatementBuilderType, scope string) (string, []any, error) {
	query, args, err := b.Select(profileColumns...).From(profilesTable).Where(sq.Eq{"user_scope": scope}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistory(row rowScanner) (models.HistoryRecord, error) {
	var (
		r       models.HistoryRecord
		rawType string
		parsed  string
	)

	if err := row.Scan(
		&r.ID,
		&r.ClientSideID,
		&r.UserScope,
		&rawType,
		&r.RawData,
		&parsed,
		&r.Description,
		&r.ActionText,
		&r.CreatedAt,
	); err != nil {
		return models.HistoryRecord{}, err
	}

	t, err := models.ParseCodeType(rawType)
	if err != nil {
		return models.HistoryRecord{}, err
	}
	r.Type = t

	if r.Payload, err = models.UnmarshalPayload(t, []byte(parsed)); err != nil {
		return models.HistoryRecord{}, err
	}

	return r, nil
}

func scanMutation(row rowScanner) (models.PendingMutation, error) {
	var (
		m       models.PendingMutation
		kind    string
		payload string
		status  string
	)

	if err := row.Scan(
		&m.ID,
		&kind,
		&payload,
		&status,
		&m.Attempts,
		&m.LastError,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return models.PendingMutation{}, err
	}

	m.Kind = models.MutationKind(kind)
	m.Payload = []byte(payload)
	m.Status = models.MutationStatus(status)

	return m, nil
}

func scanQRCode(row rowScanner) (models.QRCodeRecord, error) {
	var (
		q       models.QRCodeRecord
		rawType string
		level   string
	)

	if err := row.Scan(
		&q.ID,
		&q.ClientSideID,
		&q.UserScope,
		&rawType,
		&q.Content,
		&level,
		&q.CreatedAt,
	); err != nil {
		return models.QRCodeRecord{}, err
	}

	t, err := models.ParseCodeType(rawType)
	if err != nil {
		return models.QRCodeRecord{}, err
	}
	q.Type = t
	q.ErrorCorrection = models.ErrorCorrection(level)

	return q, nil
}
