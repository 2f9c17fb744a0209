// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/qr-facil/models"
)

// Processor classifies raw scanner text.
type Processor interface {
	Process(ctx context.Context, raw string) models.ClassifiedCode
}

// Executor runs the action menu for a classified code.
type Executor interface {
	ExecuteAction(ctx context.Context, code models.ClassifiedCode, userScope string, isReplay bool)
}
