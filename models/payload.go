// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Payload is the structured data extracted from a raw QR string.
// Every implementation belongs to exactly one [CodeType] and carries only the
// fields of that type.
type Payload interface {
	// Type returns the code type the payload belongs to.
	Type() CodeType

	payload()
}

// URLData is the payload of a [URL] code.
type URLData struct {
	URL string `json:"url"`
}

// ContactData is the payload of a [Contact] code.
type ContactData struct {
	Name         string   `json:"name,omitempty"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	Phones       []string `json:"phones,omitempty"`
	Emails       []string `json:"emails,omitempty"`
	Organization string   `json:"organization,omitempty"`
	Title        string   `json:"title,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// WiFiData is the payload of a [WiFi] code.
//
// SSID, Password and Security are nil when the credential string could not be
// matched at all.
type WiFiData struct {
	SSID     *string `json:"ssid,omitempty"`
	Password *string `json:"password,omitempty"`
	// Security is the authentication type: WPA, WEP or nopass.
	Security *string `json:"type,omitempty"`
	Hidden   bool    `json:"hidden"`
}

// SMSData is the payload of an [SMS] code.
type SMSData struct {
	Number string `json:"number"`
	Body   string `json:"body,omitempty"`
}

// PhoneData is the payload of a [Phone] code.
type PhoneData struct {
	Number string `json:"number"`
}

// EmailData is the payload of an [Email] code.
type EmailData struct {
	Address string `json:"address"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

// GeoData is the payload of a [Geo] code. Coordinates that could not be
// parsed are NaN; no range validation is applied.
type GeoData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TextData is the payload of a [Text] code.
type TextData struct {
	Text string `json:"text"`
}

func (URLData) Type() CodeType     { return URL }
func (ContactData) Type() CodeType { return Contact }
func (WiFiData) Type() CodeType    { return WiFi }
func (SMSData) Type() CodeType     { return SMS }
func (PhoneData) Type() CodeType   { return Phone }
func (EmailData) Type() CodeType   { return Email }
func (GeoData) Type() CodeType     { return Geo }
func (TextData) Type() CodeType    { return Text }

func (URLData) payload()     {}
func (ContactData) payload() {}
func (WiFiData) payload()    {}
func (SMSData) payload()     {}
func (PhoneData) payload()   {}
func (EmailData) payload()   {}
func (GeoData) payload()     {}
func (TextData) payload()    {}

// StringValue returns the value behind p or "" when p is nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

type geoJSON struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// MarshalJSON encodes NaN coordinates as null, which encoding/json cannot
// represent otherwise.
func (g GeoData) MarshalJSON() ([]byte, error) {
	var out geoJSON
	if !math.IsNaN(g.Latitude) && !math.IsInf(g.Latitude, 0) {
		out.Latitude = &g.Latitude
	}
	if !math.IsNaN(g.Longitude) && !math.IsInf(g.Longitude, 0) {
		out.Longitude = &g.Longitude
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes null or missing coordinates as NaN.
func (g *GeoData) UnmarshalJSON(b []byte) error {
	var in geoJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	g.Latitude, g.Longitude = math.NaN(), math.NaN()
	if in.Latitude != nil {
		g.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		g.Longitude = *in.Longitude
	}
	return nil
}

// MarshalPayload serialises p for storage next to its type name.
func MarshalPayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("marshal payload: %w", ErrPayloadTypeMismatch)
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", p.Type(), err)
	}
	return b, nil
}

// UnmarshalPayload decodes a payload previously produced by [MarshalPayload]
// into the variant that belongs to t.
func UnmarshalPayload(t CodeType, data []byte) (Payload, error) {
	var (
		p   Payload
		err error
	)

	switch t {
	case URL:
		var v URLData
		err = json.Unmarshal(data, &v)
		p = v
	case Contact:
		var v ContactData
		err = json.Unmarshal(data, &v)
		p = v
	case WiFi:
		var v WiFiData
		err = json.Unmarshal(data, &v)
		p = v
	case SMS:
		var v SMSData
		err = json.Unmarshal(data, &v)
		p = v
	case Phone:
		var v PhoneData
		err = json.Unmarshal(data, &v)
		p = v
	case Email:
		var v EmailData
		err = json.Unmarshal(data, &v)
		p = v
	case Geo:
		var v GeoData
		err = json.Unmarshal(data, &v)
		p = v
	case Text:
		var v TextData
		err = json.Unmarshal(data, &v)
		p = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodeType, t)
	}

	if err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", t, err)
	}
	return p, nil
}
