// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Reasons the auth middleware rejects a /save-data request before the token
// is parsed. All of them answer 401 and are only logged.
var (
	// ErrEmptyAuthorizationHeader means no Authorization header was sent.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the Bearer scheme carried a blank token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
