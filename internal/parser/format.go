// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/qr-facil/models"
)

// Format renders a payload back into the string grammar of its type.
func Format(p models.Payload) string {
	switch v := p.(type) {
	case models.URLData:
		return v.URL
	case models.ContactData:
		return FormatVCard(v)
	case models.WiFiData:
		return FormatWiFi(v)
	case models.SMSData:
		return FormatSMS(v)
	case models.PhoneData:
		return FormatPhone(v)
	case models.EmailData:
		return FormatEmail(v)
	case models.GeoData:
		return FormatGeo(v)
	case models.TextData:
		return v.Text
	default:
		return ""
	}
}

// FormatWiFi renders the canonical WIFI:T:..;S:..;P:..;H:..;; string.
func FormatWiFi(w models.WiFiData) string {
	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(models.StringValue(w.Security))
	b.WriteString(";S:")
	b.WriteString(models.StringValue(w.SSID))
	b.WriteString(";P:")
	b.WriteString(models.StringValue(w.Password))
	b.WriteString(";H:")
	b.WriteString(strconv.FormatBool(w.Hidden))
	b.WriteString(";;")
	return b.String()
}

// FormatVCard renders a vCard 3.0 card with the fields [ParseVCard] reads.
func FormatVCard(c models.ContactData) string {
	lines := []string{"BEGIN:VCARD", "VERSION:3.0"}
	if c.LastName != "" || c.FirstName != "" {
		lines = append(lines, "N:"+c.LastName+";"+c.FirstName)
	}
	if name := DisplayName(c); name != "" {
		lines = append(lines, "FN:"+name)
	}
	if c.Organization != "" {
		lines = append(lines, "ORG:"+c.Organization)
	}
	if c.Title != "" {
		lines = append(lines, "TITLE:"+c.Title)
	}
	for _, phone := range c.Phones {
		lines = append(lines, "TEL:"+phone)
	}
	for _, email := range c.Emails {
		lines = append(lines, "EMAIL:"+email)
	}
	if c.URL != "" {
		lines = append(lines, "URL:"+c.URL)
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

// FormatSMS renders sms:<number>[?body=<text>].
func FormatSMS(s models.SMSData) string {
	if s.Body == "" {
		return "sms:" + s.Number
	}
	return "sms:" + s.Number + "?" + url.Values{"body": {s.Body}}.Encode()
}

// FormatPhone renders tel:<number>.
func FormatPhone(p models.PhoneData) string {
	return "tel:" + p.Number
}

// FormatEmail renders mailto:<address>[?body=..&subject=..].
func FormatEmail(e models.EmailData) string {
	values := url.Values{}
	if e.Subject != "" {
		values.Set("subject", e.Subject)
	}
	if e.Body != "" {
		values.Set("body", e.Body)
	}
	if len(values) == 0 {
		return "mailto:" + e.Address
	}
	return "mailto:" + e.Address + "?" + values.Encode()
}

// FormatGeo renders geo:<lat>,<lng>.
func FormatGeo(g models.GeoData) string {
	return "geo:" + FormatCoordinates(g)
}

// FormatCoordinates renders "<lat>,<lng>" with the shortest exact decimals.
func FormatCoordinates(g models.GeoData) string {
	return strconv.FormatFloat(g.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(g.Longitude, 'f', -1, 64)
}

// DisplayName returns the best available name of a contact: FN when present,
// otherwise the structured first and last name.
func DisplayName(c models.ContactData) string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
