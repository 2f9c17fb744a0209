// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/qr-facil/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldClientSideID targets the client-generated identifier of a record.
	FieldClientSideID = "client_side_id"

	// FieldUserScope targets the account a record is filed under.
	FieldUserScope = "user_scope"

	// FieldType targets the code type of a history record or QR code.
	FieldType = "type"

	// FieldParsedData targets the structured payload of a history record.
	// It must decode as the payload of the record's type.
	FieldParsedData = "parsed_data"

	// FieldContent targets the encoded text of a saved QR code.
	FieldContent = "content"

	// FieldErrorCorrection targets the error correction level of a QR code.
	FieldErrorCorrection = "error_correction"

	// FieldCreatedAt targets the creation time of a record.
	FieldCreatedAt = "created_at"

	// FieldUpdatedAt targets the last change time of a profile.
	FieldUpdatedAt = "updated_at"
)

// CloudRecordValidator validates the records mirrored by clients:
// [models.CloudHistoryRecord], [models.CloudQRCode] and [models.CloudProfile],
// in value or pointer form.
type CloudRecordValidator struct{}

// NewCloudRecordValidator returns a Validator for mirrored records.
func NewCloudRecordValidator() Validator {
	return &CloudRecordValidator{}
}

// Validate dispatches on the dynamic type of obj. It returns
// ErrUnsupportedType for anything else.
func (v *CloudRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CloudHistoryRecord:
		return v.validateHistory(ctx, value, fields...)
	case *models.CloudHistoryRecord:
		return v.validateHistory(ctx, *value, fields...)

	case models.CloudQRCode:
		return v.validateQRCode(ctx, value, fields...)
	case *models.CloudQRCode:
		return v.validateQRCode(ctx, *value, fields...)

	case models.CloudProfile:
		return v.validateProfile(ctx, value, fields...)
	case *models.CloudProfile:
		return v.validateProfile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateHistory checks a history record. Default fields: client side id,
// user scope, type, parsed data and creation time.
func (v *CloudRecordValidator) validateHistory(_ context.Context, r models.CloudHistoryRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientSideID, FieldUserScope, FieldType, FieldParsedData, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if r.ClientSideID == "" {
				return ErrInvalidClientSideID
			}
		case FieldUserScope:
			if r.UserScope == "" {
				return ErrInvalidUserScope
			}
		case FieldType:
			if !r.Type.Valid() {
				return ErrInvalidType
			}
		case FieldParsedData:
			if _, err := models.UnmarshalPayload(r.Type, r.ParsedData); err != nil {
				return ErrInvalidParsedData
			}
		case FieldCreatedAt:
			if r.CreatedAt.IsZero() {
				return ErrMissingTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateQRCode checks a saved QR code. Default fields: client side id,
// user scope, type, content, error correction and creation time.
func (v *CloudRecordValidator) validateQRCode(_ context.Context, q models.CloudQRCode, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientSideID, FieldUserScope, FieldType, FieldContent, FieldErrorCorrection, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if q.ClientSideID == "" {
				return ErrInvalidClientSideID
			}
		case FieldUserScope:
			if q.UserScope == "" {
				return ErrInvalidUserScope
			}
		case FieldType:
			if !q.Type.Valid() {
				return ErrInvalidType
			}
		case FieldContent:
			if q.Content == "" {
				return ErrEmptyContent
			}
		case FieldErrorCorrection:
			if !q.ErrorCorrection.Valid() {
				return ErrInvalidErrorCorrection
			}
		case FieldCreatedAt:
			if q.CreatedAt.IsZero() {
				return ErrMissingTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CloudRecordValidator) validateProfile(_ context.Context, p models.CloudProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserScope, FieldUpdatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldUserScope:
			if p.UserScope == "" {
				return ErrInvalidUserScope
			}
		case FieldUpdatedAt:
			if p.UpdatedAt.IsZero() {
				return ErrMissingTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
