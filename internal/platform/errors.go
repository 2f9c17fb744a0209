// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import "errors"

var (
	// ErrClipboardUnavailable is returned when the system has no clipboard
	// utility the client can use.
	ErrClipboardUnavailable = errors.New("clipboard is unavailable")

	// ErrUnsupportedPlatform is returned when no opener is known for the
	// running operating system.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrEmptyURI is returned when asked to open nothing.
	ErrEmptyURI = errors.New("empty uri")

	// ErrEmptyContact is returned when a contact has no field worth saving.
	ErrEmptyContact = errors.New("contact is empty")
)
