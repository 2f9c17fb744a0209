// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"regexp"

	"github.com/MKhiriev/qr-facil/models"
)

var wifiPattern = regexp.MustCompile(`(?i:WIFI:T:)([^;]*);S:([^;]*);P:([^;]*);H:([^;]*)`)

// ParseWiFi extracts security type, SSID, password and hidden flag from a
// WIFI:T:<type>;S:<ssid>;P:<password>;H:<hidden>;; string.
//
// Hidden is true only for the literal "true". When the string does not match
// the pattern all fields stay nil.
func ParseWiFi(raw string) (models.WiFiData, error) {
	m := wifiPattern.FindStringSubmatch(raw)
	if m == nil {
		return models.WiFiData{}, newIssue("wifi", "credential string does not match WIFI:T:;S:;P:;H:")
	}

	return models.WiFiData{
		Security: models.StringPtr(m[1]),
		SSID:     models.StringPtr(m[2]),
		Password: models.StringPtr(m[3]),
		Hidden:   m[4] == "true",
	}, nil
}
