// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/MKhiriev/qr-facil/models"
)

var recoveryLevels = map[models.ErrorCorrection]qrcode.RecoveryLevel{
	models.ErrorCorrectionLow:      qrcode.Low,
	models.ErrorCorrectionMedium:   qrcode.Medium,
	models.ErrorCorrectionQuartile: qrcode.High,
	models.ErrorCorrectionHigh:     qrcode.Highest,
}

// Encoder renders text as a QR module matrix without the quiet zone.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Encode(content string, level models.ErrorCorrection) (models.Matrix, error) {
	rl, ok := recoveryLevels[level]
	if !ok {
		return models.Matrix{}, fmt.Errorf("unknown error correction level %q", level)
	}

	q, err := qrcode.New(content, rl)
	if err != nil {
		return models.Matrix{}, fmt.Errorf("encode qr code: %w", err)
	}
	q.DisableBorder = true

	modules := q.Bitmap()
	return models.Matrix{Modules: modules, Size: len(modules)}, nil
}
