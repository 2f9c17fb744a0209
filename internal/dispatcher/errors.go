// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatcher

import "errors"

var (
	// ErrUnexpectedAction is returned when the prompter reports an action
	// that was not offered for the code.
	ErrUnexpectedAction = errors.New("action not offered")

	// ErrPayloadMismatch is returned when a code's payload does not belong
	// to its type.
	ErrPayloadMismatch = errors.New("payload does not match code type")

	// ErrInvalidCoordinates is returned when a map link is requested for a
	// location that could not be parsed.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	errActionPanicked = errors.New("action panicked")
)
