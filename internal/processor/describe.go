// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package processor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/MKhiriev/qr-facil/internal/parser"
	"github.com/MKhiriev/qr-facil/models"
)

const textPreviewRunes = 50

// Describe renders the one-line summary shown next to a code.
func Describe(p models.Payload) string {
	switch v := p.(type) {
	case models.URLData:
		return "Link: " + v.URL
	case models.ContactData:
		name := parser.DisplayName(v)
		if name == "" {
			name = "no name"
		}
		return "Contact: " + name
	case models.WiFiData:
		if v.SSID == nil || *v.SSID == "" {
			return "WiFi network: network not identified"
		}
		return "WiFi network: " + *v.SSID
	case models.SMSData:
		return "SMS to " + v.Number
	case models.PhoneData:
		return "Phone: " + v.Number
	case models.EmailData:
		return "Email: " + v.Address
	case models.GeoData:
		return fmt.Sprintf("Location: %s, %s", coordinate(v.Latitude), coordinate(v.Longitude))
	case models.TextData:
		return "Text: " + preview(v.Text, textPreviewRunes)
	default:
		return ""
	}
}

func coordinate(f float64) string {
	if math.IsNaN(f) {
		return "?"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func preview(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
