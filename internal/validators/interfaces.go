// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account request payloads before they reach the
// account service. A check is selected by field name (FieldIdentity,
// FieldSecretLength, ...), so each operation asks only for the rules it needs:
// registration enforces shape and length, login and delete-user only presence.
package validators

import "context"

// Validator checks obj against the named fields, or against the type's
// default set when no field is given. It returns the first rule that fails.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
