// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks records received by the remote store before
// they reach PostgreSQL.
//
// A Validator accepts any supported value and, optionally, the names of the
// fields to check. Without field names a default set is validated. The
// remote store service wraps its repositories with a validating layer built
// on this package, so transport handlers stay free of business rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
