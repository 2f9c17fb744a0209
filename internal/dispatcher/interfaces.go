// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatcher

import (
	"context"

	"github.com/MKhiriev/qr-facil/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatcher_mock.go -package=mock

// Prompter presents a modal choice and blocks until the user picks an option.
// Dismissing the prompt is reported as [ActionCancel] or an error; both
// abort the dispatch.
type Prompter interface {
	Choose(ctx context.Context, title, message string, options []Option) (ActionID, error)
}

// Alerter shows a short informational message to the user.
type Alerter interface {
	Alert(ctx context.Context, title, message string)
}

// Clipboard receives copied text.
type Clipboard interface {
	SetText(text string) error
}

// Launcher hands a deep link (tel:, sms:, mailto:, http(s):, settings URIs)
// to the operating system.
type Launcher interface {
	Open(ctx context.Context, uri string) error
}

// Contacts is the device address book.
type Contacts interface {
	// RequestPermission asks for write access. A false result without an
	// error means the user denied it.
	RequestPermission(ctx context.Context) (bool, error)

	// AddContact stores c and returns the identifier assigned to it.
	AddContact(ctx context.Context, c models.ContactData) (string, error)
}

// HistorySaver persists a classified code. It reports failure with ok=false
// instead of an error.
type HistorySaver interface {
	Save(ctx context.Context, code models.ClassifiedCode, userScope string) (id int64, ok bool)
}
