// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/mock"
	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/MKhiriev/qr-facil/models"
)

type qrFixture struct {
	repo    *mock.MockQRCodeRepository
	encoder *mock.MockEncoder
	nudger  *mock.MockNudger
	svc     service.QRCodeService
}

func newQRFixture(t *testing.T) *qrFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &qrFixture{
		repo:    mock.NewMockQRCodeRepository(ctrl),
		encoder: mock.NewMockEncoder(ctrl),
		nudger:  mock.NewMockNudger(ctrl),
	}
	f.svc = service.NewQRCodeService(f.repo, f.encoder, f.nudger, logger.Nop())
	return f
}

func TestQRCodeService_Generate(t *testing.T) {
	f := newQRFixture(t)
	ctx := context.Background()

	matrix := models.Matrix{Size: 21, Modules: make([][]bool, 21)}
	toSave := models.QRCodeRecord{
		UserScope:       "ana@example.com",
		Type:            models.Phone,
		Content:         "tel:+5511988887777",
		ErrorCorrection: models.ErrorCorrectionHigh,
	}
	saved := toSave
	saved.ID = 3
	saved.ClientSideID = "c3"

	gomock.InOrder(
		f.encoder.EXPECT().Encode("tel:+5511988887777", models.ErrorCorrectionHigh).Return(matrix, nil),
		f.repo.EXPECT().Save(ctx, toSave).Return(saved, nil),
		f.nudger.EXPECT().Nudge(),
	)

	rec, m, err := f.svc.Generate(ctx, "ana@example.com", models.PhoneData{Number: "+5511988887777"}, models.ErrorCorrectionHigh)
	require.NoError(t, err)
	assert.Equal(t, saved, rec)
	assert.Equal(t, 21, m.Size)
}

func TestQRCodeService_Generate_DefaultLevel(t *testing.T) {
	f := newQRFixture(t)

	f.encoder.EXPECT().Encode("sms:+34600111222", models.ErrorCorrectionMedium).Return(models.Matrix{Size: 21}, nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.QRCodeRecord) (models.QRCodeRecord, error) {
			assert.Equal(t, models.ErrorCorrectionMedium, q.ErrorCorrection)
			assert.Equal(t, models.SMS, q.Type)
			return q, nil
		})
	f.nudger.EXPECT().Nudge()

	_, _, err := f.svc.Generate(context.Background(), "", models.SMSData{Number: "+34600111222"}, "")
	require.NoError(t, err)
}

func TestQRCodeService_Generate_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid level", func(t *testing.T) {
		f := newQRFixture(t)
		_, _, err := f.svc.Generate(ctx, "", models.TextData{Text: "hi"}, "Z")
		assert.ErrorIs(t, err, service.ErrInvalidErrorCorrection)
	})

	t.Run("empty content", func(t *testing.T) {
		f := newQRFixture(t)
		_, _, err := f.svc.Generate(ctx, "", models.TextData{}, models.ErrorCorrectionLow)
		assert.ErrorIs(t, err, service.ErrEmptyContent)
	})

	t.Run("nil payload", func(t *testing.T) {
		f := newQRFixture(t)
		_, _, err := f.svc.Generate(ctx, "", nil, models.ErrorCorrectionLow)
		assert.ErrorIs(t, err, service.ErrEmptyContent)
	})

	t.Run("encoder failure is not saved", func(t *testing.T) {
		f := newQRFixture(t)
		f.encoder.EXPECT().Encode("hi", models.ErrorCorrectionLow).Return(models.Matrix{}, errors.New("content too long"))

		_, _, err := f.svc.Generate(ctx, "", models.TextData{Text: "hi"}, models.ErrorCorrectionLow)
		assert.ErrorIs(t, err, service.ErrEncodingQRCode)
	})

	t.Run("save failure does not nudge", func(t *testing.T) {
		f := newQRFixture(t)
		f.encoder.EXPECT().Encode("hi", models.ErrorCorrectionLow).Return(models.Matrix{Size: 21}, nil)
		f.repo.EXPECT().Save(ctx, gomock.Any()).Return(models.QRCodeRecord{}, errors.New("readonly database"))

		_, _, err := f.svc.Generate(ctx, "", models.TextData{Text: "hi"}, models.ErrorCorrectionLow)
		assert.Error(t, err)
	})
}

func TestQRCodeService_List(t *testing.T) {
	f := newQRFixture(t)
	want := []models.QRCodeRecord{{ID: 2}, {ID: 1}}
	f.repo.EXPECT().List(gomock.Any(), "ana@example.com", models.DefaultHistoryLimit).Return(want, nil)

	got, err := f.svc.List(context.Background(), "ana@example.com", 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
