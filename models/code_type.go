// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// CodeType is the semantic type of a scanned or generated QR payload.
// Exactly one type is assigned to every raw string.
type CodeType string

const (
	// URL is an http:// or https:// link.
	URL CodeType = "url"

	// Contact is a vCard business card.
	Contact CodeType = "contact"

	// WiFi is a WIFI:T:..;S:..;P:..;H:..;; network credential string.
	WiFi CodeType = "wifi"

	// SMS is an sms: URI with an optional pre-filled body.
	SMS CodeType = "sms"

	// Phone is a tel: URI.
	Phone CodeType = "phone"

	// Email is a mailto: URI or a bare address.
	Email CodeType = "email"

	// Geo is a geo: URI or a bare "lat,lng" pair.
	Geo CodeType = "geo"

	// Text is anything else.
	Text CodeType = "text"
)

// CodeTypes lists every type in classification order.
var CodeTypes = []CodeType{URL, Contact, WiFi, SMS, Phone, Email, Geo, Text}

var actionTexts = map[CodeType]string{
	URL:     "Open Link",
	Contact: "Save Contact",
	WiFi:    "Connect to WiFi",
	SMS:     "Send SMS",
	Phone:   "Call",
	Email:   "Send Email",
	Geo:     "Open Map",
	Text:    "Copy Text",
}

// ActionText returns the label of the primary action for the type.
func (t CodeType) ActionText() string {
	if s, ok := actionTexts[t]; ok {
		return s
	}
	return actionTexts[Text]
}

// Valid reports whether t is one of the known types.
func (t CodeType) Valid() bool {
	_, ok := actionTexts[t]
	return ok
}

func (t CodeType) String() string {
	return string(t)
}

// ParseCodeType converts a stored type name back into a [CodeType].
func ParseCodeType(s string) (CodeType, error) {
	t := CodeType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCodeType, s)
	}
	return t, nil
}
