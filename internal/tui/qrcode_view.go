// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/qr-facil/models"
)

const quietZone = 2

type qrCodeModel struct {
	record models.QRCodeRecord
	matrix models.Matrix
}

func (q qrCodeModel) View() string {
	title := "QR: " + string(q.record.Type) + " (" + string(q.record.ErrorCorrection) + ")"
	data := renderMatrix(q.matrix) + "\n" + fitText(q.record.Content, historyLineWidth)
	return renderPage(title, data, "enter / esc: back")
}

// renderMatrix draws two module rows per text line with half blocks, inside a
// light quiet zone.
func renderMatrix(m models.Matrix) string {
	size := len(m.Modules)
	if size == 0 {
		return ""
	}

	dark := func(y, x int) bool {
		y -= quietZone
		x -= quietZone
		if y < 0 || x < 0 || y >= size || x >= len(m.Modules[y]) {
			return false
		}
		return m.Modules[y][x]
	}

	total := size + 2*quietZone
	var b strings.Builder
	for y := 0; y < total; y += 2 {
		for x := 0; x < total; x++ {
			top, bottom := dark(y, x), dark(y+1, x)
			switch {
			case top && bottom:
				b.WriteString(" ")
			case top:
				b.WriteString("▄")
			case bottom:
				b.WriteString("▀")
			default:
				b.WriteString("█")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
