// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/validators"
	"github.com/MKhiriev/qr-facil/models"
)

// MirrorValidationService rejects malformed records before they reach the
// wrapped [MirrorService].
type MirrorValidationService struct {
	inner     MirrorService
	validator validators.Validator
}

func NewMirrorValidationService() MirrorServiceWrapper {
	return &MirrorValidationService{
		validator: validators.NewCloudRecordValidator(),
	}
}

func (v *MirrorValidationService) UpsertHistory(ctx context.Context, record models.CloudHistoryRecord) error {
	if err := v.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpsertHistory(ctx, record)
}

func (v *MirrorValidationService) DeleteHistory(ctx context.Context, scope, clientSideID string) error {
	// the record is gone on the client, only the key is left to check
	record := models.CloudHistoryRecord{UserScope: scope, ClientSideID: clientSideID}
	if err := v.validator.Validate(ctx, record, validators.FieldUserScope, validators.FieldClientSideID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeleteHistory(ctx, scope, clientSideID)
}

func (v *MirrorValidationService) DeleteAllHistory(ctx context.Context, scope string) (int64, error) {
	record := models.CloudHistoryRecord{UserScope: scope}
	if err := v.validator.Validate(ctx, record, validators.FieldUserScope); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeleteAllHistory(ctx, scope)
}

func (v *MirrorValidationService) SaveQRCode(ctx context.Context, code models.CloudQRCode) error {
	if err := v.validator.Validate(ctx, code); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SaveQRCode(ctx, code)
}

func (v *MirrorValidationService) UpdatePremium(ctx context.Context, profile models.CloudProfile) error {
	if err := v.validator.Validate(ctx, profile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdatePremium(ctx, profile)
}

func (v *MirrorValidationService) Wrap(inner MirrorService) MirrorService {
	v.inner = inner
	return v
}
