// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"strings"

	"github.com/MKhiriev/qr-facil/models"
)

// ParseVCard reads the recognised properties of a vCard line by line.
//
// FN, N, TEL, EMAIL, ORG, TITLE and URL are extracted; TEL and EMAIL may repeat
// and carry parameters (TEL;TYPE=CELL:...). Every other line, including
// BEGIN/END markers, is ignored, and a missing END:VCARD is not an error.
func ParseVCard(raw string) (models.ContactData, error) {
	var (
		contact    models.ContactData
		recognised bool
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		switch propertyName(key) {
		case "FN":
			contact.Name = value
		case "N":
			parts := strings.Split(value, ";")
			contact.LastName = parts[0]
			if len(parts) > 1 {
				contact.FirstName = parts[1]
			}
		case "TEL":
			if value != "" {
				contact.Phones = append(contact.Phones, value)
			}
		case "EMAIL":
			if value != "" {
				contact.Emails = append(contact.Emails, value)
			}
		case "ORG":
			contact.Organization = value
		case "TITLE":
			contact.Title = value
		case "URL":
			contact.URL = value
		default:
			continue
		}
		recognised = true
	}

	if !recognised {
		return contact, newIssue("vcard", "no recognised properties")
	}
	return contact, nil
}

// propertyName strips parameters (";TYPE=CELL") and group prefixes
// ("item1.") from a vCard property key.
func propertyName(key string) string {
	name, _, _ := strings.Cut(key, ";")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToUpper(strings.TrimSpace(name))
}
