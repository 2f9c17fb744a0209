// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/i18n"
	"github.com/MKhiriev/qr-facil/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// syncStatus is the one-line outbox summary shown under every screen.
type syncStatus struct {
	spinner spinner.Model
	running bool
	pending int
	offline bool
	known   bool
}

func newSyncStatus() syncStatus {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncStatus{spinner: s}
}

func (s *syncStatus) apply(r models.FlushResult) {
	s.running = false
	s.known = true
	s.pending = r.Remaining
	s.offline = r.Offline
}

func (s syncStatus) View(t i18n.Translator) string {
	if s.running {
		return s.spinner.View() + " " + i18n.Tr(t, i18n.KeySyncPending)
	}
	if !s.known {
		return ""
	}
	switch {
	case s.offline:
		return errorStyle.Render(fmt.Sprintf("%s (%d %s)", i18n.Tr(t, i18n.KeySyncOffline), s.pending, i18n.Tr(t, i18n.KeySyncPending)))
	case s.pending > 0:
		return fmt.Sprintf("%d %s", s.pending, i18n.Tr(t, i18n.KeySyncPending))
	default:
		return statusStyle.Render(i18n.Tr(t, i18n.KeySyncDone))
	}
}
