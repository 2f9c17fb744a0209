// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/qr-facil/internal/dispatcher"
	"github.com/MKhiriev/qr-facil/models"
)

// ScannedMsg carries a raw code delivered by an external scanner source.
type ScannedMsg struct {
	Raw string
}

type promptMsg struct {
	title   string
	message string
	options []dispatcher.Option
	reply   chan<- dispatcher.ActionID
}

type alertMsg struct {
	title   string
	message string
}

type dispatchDoneMsg struct{}

type historyLoadedMsg struct {
	records []models.HistoryRecord
	ok      bool
}

type historyDeletedMsg struct {
	ok bool
}

type syncDoneMsg struct {
	result models.FlushResult
	err    error
}

type pendingMsg struct {
	pending int
	err     error
}

type qrGeneratedMsg struct {
	record models.QRCodeRecord
	matrix models.Matrix
	err    error
}

type premiumMsg struct {
	premium bool
	err     error
}

type statusTickMsg struct{}

type clearStatusMsg struct{}
