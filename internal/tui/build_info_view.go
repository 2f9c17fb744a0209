// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/qr-facil/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, premium premiumState) string {
	var b strings.Builder

	b.WriteString("Application: QR Fácil\n")
	for _, line := range info.Lines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("Premium: ")
	b.WriteString(premium.String())

	return renderPage("ABOUT", b.String(), "p: toggle premium  esc: back")
}

// premiumState is the account flag shown on the about screen.
type premiumState struct {
	known   bool
	premium bool
}

func (p premiumState) String() string {
	switch {
	case !p.known:
		return "N/A"
	case p.premium:
		return "yes"
	default:
		return "no"
	}
}
