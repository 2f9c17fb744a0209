// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/qr-facil/internal/i18n"
	"github.com/MKhiriev/qr-facil/models"
)

const historyLineWidth = 48

type historyModel struct {
	items   []models.HistoryRecord
	idx     int
	loading bool
	failed  bool
}

func (h historyModel) current() (models.HistoryRecord, bool) {
	if len(h.items) == 0 || h.idx < 0 || h.idx >= len(h.items) {
		return models.HistoryRecord{}, false
	}
	return h.items[h.idx], true
}

func (h *historyModel) move(delta int) {
	if len(h.items) == 0 {
		h.idx = 0
		return
	}
	h.idx += delta
	if h.idx < 0 {
		h.idx = 0
	}
	if h.idx >= len(h.items) {
		h.idx = len(h.items) - 1
	}
}

func (h *historyModel) setItems(items []models.HistoryRecord) {
	h.items = items
	h.loading = false
	h.move(0)
}

func historyIcon(t models.CodeType) string {
	switch t {
	case models.URL:
		return "[U]"
	case models.Contact:
		return "[C]"
	case models.WiFi:
		return "[W]"
	case models.SMS:
		return "[S]"
	case models.Phone:
		return "[P]"
	case models.Email:
		return "[E]"
	case models.Geo:
		return "[G]"
	default:
		return "[T]"
	}
}

func (h historyModel) View(t i18n.Translator) string {
	var b strings.Builder

	switch {
	case h.loading:
		b.WriteString("...")
	case h.failed:
		b.WriteString(errorStyle.Render(i18n.Tr(t, i18n.KeyActionFailed)))
	case len(h.items) == 0:
		b.WriteString(i18n.Tr(t, i18n.KeyHistoryEmpty))
	default:
		for i, item := range h.items {
			line := fmt.Sprintf("%s %s  %s",
				historyIcon(item.Type),
				item.CreatedAt.Local().Format("2006-01-02 15:04"),
				fitText(item.Description, historyLineWidth),
			)
			if i == h.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			if i < len(h.items)-1 {
				b.WriteString("\n")
			}
		}
	}

	return renderPage(i18n.Tr(t, i18n.KeyHistoryTitle), b.String(),
		"enter: open  d: delete  D: delete all  s: sync  tab/esc: back  q: quit")
}
