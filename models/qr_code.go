// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorCorrection is the QR error correction level requested from the encoder.
type ErrorCorrection string

const (
	ErrorCorrectionLow      ErrorCorrection = "L"
	ErrorCorrectionMedium   ErrorCorrection = "M"
	ErrorCorrectionQuartile ErrorCorrection = "Q"
	ErrorCorrectionHigh     ErrorCorrection = "H"
)

// QRCodeRecord is a QR code generated and saved by the user.
type QRCodeRecord struct {
	ID              int64           `json:"id"`
	ClientSideID    string          `json:"client_side_id"`
	UserScope       string          `json:"user_email,omitempty"`
	Type            CodeType        `json:"type"`
	Content         string          `json:"content"`
	ErrorCorrection ErrorCorrection `json:"error_correction"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Matrix is the module grid produced by a QR encoder. Dark modules are true.
type Matrix struct {
	Modules [][]bool
	Size    int
}

// Valid reports whether e is one of the four standard levels.
func (e ErrorCorrection) Valid() bool {
	switch e {
	case ErrorCorrectionLow, ErrorCorrectionMedium, ErrorCorrectionQuartile, ErrorCorrectionHigh:
		return true
	}
	return false
}
