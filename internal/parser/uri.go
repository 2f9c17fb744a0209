// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/qr-facil/models"
)

const schemeLen = 4 // "sms:", "tel:"

// ParseSMS reads sms:<number>[?body=<text>].
func ParseSMS(raw string) (models.SMSData, error) {
	rest := stripPrefix(raw, schemeLen)
	number, query, hasQuery := strings.Cut(rest, "?")

	data := models.SMSData{Number: number}
	if !hasQuery {
		return data, nil
	}

	values, err := url.ParseQuery(query)
	data.Body = values.Get("body")
	if err != nil {
		return data, newIssue("sms", "query string: "+err.Error())
	}
	return data, nil
}

// ParsePhone reads tel:<number>. The number is kept verbatim.
func ParsePhone(raw string) (models.PhoneData, error) {
	return models.PhoneData{Number: stripPrefix(raw, schemeLen)}, nil
}

// ParseEmail reads mailto:<address>[?subject=..&body=..] or a bare address.
func ParseEmail(raw string) (models.EmailData, error) {
	rest, ok := strings.CutPrefix(raw, "mailto:")
	if !ok {
		return models.EmailData{Address: raw}, nil
	}

	address, query, hasQuery := strings.Cut(rest, "?")
	data := models.EmailData{Address: address}
	if !hasQuery {
		return data, nil
	}

	values, err := url.ParseQuery(query)
	data.Subject = values.Get("subject")
	data.Body = values.Get("body")
	if err != nil {
		return data, newIssue("email", "query string: "+err.Error())
	}
	return data, nil
}

func stripPrefix(raw string, n int) string {
	if len(raw) <= n {
		return ""
	}
	return raw[n:]
}
