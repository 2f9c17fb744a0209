// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/qr-facil/models"
)

// Replays of the same outbox entry hit the unique (user_scope, client_side_id)
// key and are ignored.
func buildUpsertRemoteHistoryQuery(b sq.StatementBuilderType, r models.CloudHistoryRecord) (string, []any, error) {
	query, args, err := b.Insert(historyTable).
		Columns(historyColumns[1:]...).
		Values(r.ClientSideID, r.UserScope, string(r.Type), r.RawData, string(r.ParsedData), r.Description, r.ActionText, r.CreatedAt).
		Suffix("ON CONFLICT (user_scope, client_side_id) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteRemoteHistoryQuery(b sq.StatementBuilderType, scope, clientSideID string) (string, []any, error) {
	query, args, err := b.Delete(historyTable).
		Where(sq.Eq{"user_scope": scope, "client_side_id": clientSideID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAllRemoteHistoryQuery(b sq.StatementBuilderType, scope string) (string, []any, error) {
	query, args, err := b.Delete(historyTable).Where(sq.Eq{"user_scope": scope}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertRemoteQRCodeQuery(b sq.StatementBuilderType, q models.CloudQRCode) (string, []any, error) {
	query, args, err := b.Insert(qrCodesTable).
		Columns(qrCodeColumns[1:]...).
		Values(q.ClientSideID, q.UserScope, string(q.Type), q.Content, string(q.ErrorCorrection), q.CreatedAt).
		Suffix("ON CONFLICT (user_scope, client_side_id) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// A stale replay never overwrites a newer flag.
func buildUpsertRemoteProfileQuery(b sq.StatementBuilderType, p models.CloudProfile) (string, []any, error) {
	query, args, err := b.Insert(profilesTable).
		Columns(profileColumns...).
		Values(p.UserScope, p.Premium, p.UpdatedAt).
		Suffix("ON CONFLICT (user_scope) DO UPDATE SET premium = EXCLUDED.premium, updated_at = EXCLUDED.updated_at " +
			"WHERE profiles.updated_at < EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
