// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the account server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the account
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Status calls GET /status and returns the server message.
	Status(ctx context.Context) (string, error)

	// Register creates an account. It does not sign in.
	Register(ctx context.Context, identity, secret string) error

	// Login authenticates and returns the server copy of the account. On
	// success the issued token is stored via SetToken.
	Login(ctx context.Context, identity, secret string) (models.LoginResponse, error)

	// SaveData pushes working data using the stored bearer token.
	SaveData(ctx context.Context, identity, workingData string) error

	// DeleteAccount removes the account after the server re-verifies secret.
	DeleteAccount(ctx context.Context, identity, secret string) error
}
