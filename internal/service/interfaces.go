// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/qr-facil/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MirrorService applies mutations mirrored by clients to the remote store.
// Every operation is idempotent so that outbox replays are safe.
type MirrorService interface {
	UpsertHistory(ctx context.Context, record models.CloudHistoryRecord) error
	DeleteHistory(ctx context.Context, scope, clientSideID string) error
	DeleteAllHistory(ctx context.Context, scope string) (int64, error)
	SaveQRCode(ctx context.Context, code models.CloudQRCode) error
	UpdatePremium(ctx context.Context, profile models.CloudProfile) error
}

// AppInfoService reports build information of the running remote store.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MirrorServiceWrapper defines middleware composition for MirrorService.
// Implementations wrap an existing MirrorService to add behavior such as
// validation.
type MirrorServiceWrapper interface {
	Wrap(MirrorService) MirrorService
}
