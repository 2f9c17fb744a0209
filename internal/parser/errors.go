// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every *Issue via [errors.Is].
var ErrMalformed = errors.New("malformed payload")

// Issue describes why a raw string could only be parsed partially.
type Issue struct {
	// Format is the grammar that was being parsed (e.g. "wifi").
	Format string
	// Reason is a short human-readable explanation.
	Reason string
}

func (i *Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Format, i.Reason)
}

func (i *Issue) Unwrap() error {
	return ErrMalformed
}

func newIssue(format, reason string) *Issue {
	return &Issue{Format: format, Reason: reason}
}
