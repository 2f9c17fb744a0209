// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatcher

import (
	"fmt"
	"math"

	"github.com/MKhiriev/qr-facil/internal/parser"
	"github.com/MKhiriev/qr-facil/models"
)

// MapURL returns the external map link for g.
func MapURL(g models.GeoData) (string, error) {
	if math.IsNaN(g.Latitude) || math.IsNaN(g.Longitude) {
		return "", fmt.Errorf("%w: %s", ErrInvalidCoordinates, parser.FormatCoordinates(g))
	}
	return "https://maps.google.com/?q=" + parser.FormatCoordinates(g), nil
}

// wifiSettingsURIs maps GOOS to the URI that opens the network settings.
var wifiSettingsURIs = map[string]string{
	"windows": "ms-settings:network-wifi",
	"darwin":  "x-apple.systempreferences:com.apple.preference.network",
	"android": "android.settings.WIFI_SETTINGS",
}

// WiFiSettingsURI returns the settings deep link for goos and whether the
// platform has one.
func WiFiSettingsURI(goos string) (string, bool) {
	uri, ok := wifiSettingsURIs[goos]
	return uri, ok
}
