// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

func renderAlert(a alertMsg) string {
	content := titleStyle.Render(a.title) + "\n\n" + a.message + "\n\nenter / esc: ok"
	return overlayBoxStyle.Render(content)
}
