// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks verification server requests before they reach
// storage.
//
// A [Validator] validates a whole request or, when field names are passed,
// only the named fields. Unknown fields and unsupported request types are
// reported as errors so that a typo in a caller fails loudly.
package validators

import "context"

// Validator validates an arbitrary request value, optionally restricted to
// the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
