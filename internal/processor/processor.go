// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package processor classifies raw QR strings into exactly one
// [models.CodeType] and extracts the matching structured payload.
//
// Classification is a pure function of the input: the same string always
// yields the same code. Rules overlap (a URL may contain "@", a note may
// contain "VCARD"), so they are evaluated in a fixed order and the first
// match wins.
package processor

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/parser"
	"github.com/MKhiriev/qr-facil/models"
)

type rule struct {
	codeType models.CodeType
	match    func(s string) bool
	build    func(s string) (models.Payload, error)
}

var bareCoordinates = regexp.MustCompile(`^-?\d+(\.\d+)?,\s*-?\d+(\.\d+)?`)

// rules is the precedence table. Order matters.
var rules = []rule{
	{
		codeType: models.URL,
		match: func(s string) bool {
			l := strings.ToLower(s)
			return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
		},
		build: func(s string) (models.Payload, error) {
			return models.URLData{URL: s}, nil
		},
	},
	{
		codeType: models.Contact,
		match: func(s string) bool {
			return strings.HasPrefix(s, "BEGIN:VCARD") || strings.Contains(s, "VCARD")
		},
		build: func(s string) (models.Payload, error) {
			return parser.ParseVCard(s)
		},
	},
	{
		codeType: models.WiFi,
		match: func(s string) bool {
			return strings.HasPrefix(s, "WIFI:")
		},
		build: func(s string) (models.Payload, error) {
			return parser.ParseWiFi(s)
		},
	},
	{
		codeType: models.SMS,
		match: func(s string) bool {
			return strings.HasPrefix(s, "sms:") || strings.HasPrefix(s, "SMS:")
		},
		build: func(s string) (models.Payload, error) {
			return parser.ParseSMS(s)
		},
	},
	{
		codeType: models.Phone,
		match: func(s string) bool {
			return strings.HasPrefix(s, "tel:") || strings.HasPrefix(s, "TEL:")
		},
		build: func(s string) (models.Payload, error) {
			return parser.ParsePhone(s)
		},
	},
	{
		codeType: models.Email,
		match: func(s string) bool {
			return strings.HasPrefix(s, "mailto:") ||
				(strings.Contains(s, "@") && !strings.ContainsFunc(s, unicode.IsSpace))
		},
		build: func(s string) (models.Payload, error) {
			return parser.ParseEmail(s)
		},
	},
	{
		codeType: models.Geo,
		match: func(s string) bool {
			return strings.HasPrefix(s, "geo:") || bareCoordinates.MatchString(s)
		},
		build: func(s string) (models.Payload, error) {
			return parser.ParseGeo(s)
		},
	},
	{
		codeType: models.Text,
		match:    func(string) bool { return true },
		build: func(s string) (models.Payload, error) {
			return models.TextData{Text: s}, nil
		},
	},
}

// Classify determines the type of raw and extracts its payload. It never
// fails: malformed input of a recognised type keeps that type with partial
// fields, and anything unrecognised becomes [models.Text].
func Classify(raw string) models.ClassifiedCode {
	code, _ := classify(raw)
	return code
}

// FromPayload builds the classified code of a payload that is about to be
// encoded, using the same description and action templates as [Classify].
func FromPayload(p models.Payload) models.ClassifiedCode {
	return newCode(parser.Format(p), p)
}

func classify(raw string) (models.ClassifiedCode, error) {
	s := strings.TrimSpace(raw)

	for _, r := range rules {
		if !r.match(s) {
			continue
		}
		payload, issue := r.build(s)
		return newCode(raw, payload), issue
	}

	// unreachable: the text rule matches everything
	return newCode(raw, models.TextData{Text: s}), nil
}

func newCode(raw string, p models.Payload) models.ClassifiedCode {
	return models.ClassifiedCode{
		Type:        p.Type(),
		RawData:     raw,
		Payload:     p,
		Description: Describe(p),
		ActionText:  p.Type().ActionText(),
	}
}

// Processor is the logging front of [Classify] used by the scan loop.
type Processor struct {
	logger *logger.Logger
}

// New returns a Processor that reports partial parses to log.
func New(log *logger.Logger) *Processor {
	return &Processor{logger: log}
}

// Process classifies raw like [Classify] and logs any parse issue at debug
// level.
func (p *Processor) Process(ctx context.Context, raw string) models.ClassifiedCode {
	code, issue := classify(raw)
	if issue != nil {
		p.logger.Debug().
			Err(issue).
			Str("func", "Processor.Process").
			Str("type", code.Type.String()).
			Msg("payload parsed partially")
	}
	return code
}
