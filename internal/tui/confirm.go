// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

func renderConfirm(question string) string {
	content := question + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
