// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// account server handlers and the client that decodes their responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording on both sides of the
// wire.
package app

// Success messages.
const (
	// MsgServerRunning is the body of GET /status.
	MsgServerRunning = "server is running"

	// MsgRegistrationSucceeded is returned after an account is created.
	MsgRegistrationSucceeded = "registration successful"

	// MsgLoginSucceeded is returned together with the token and user payload.
	MsgLoginSucceeded = "login successful"

	// MsgDataSaved is returned after working data was stored.
	MsgDataSaved = "data saved"

	// MsgAccountDeleted is returned after an account was removed.
	MsgAccountDeleted = "account deleted"
)

// Failure messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidIdentitySecret is returned by /login both when the identity is
	// unknown and when the secret is wrong, so the body does not reveal which.
	MsgInvalidIdentitySecret = "invalid identity/secret"

	// MsgWrongSecret is returned by /delete-user when the secret does not
	// match the stored hash.
	MsgWrongSecret = "wrong secret"

	// MsgIdentityAlreadyExists is returned when a registration attempt is
	// rejected because the identity is already in use.
	MsgIdentityAlreadyExists = "identity already exists"

	// MsgAccountNotFound is returned when no account matches the identity.
	MsgAccountNotFound = "account not found"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// missing, expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when a token issued for one identity is
	// used to modify another identity's data.
	MsgAccessDenied = "access denied"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
