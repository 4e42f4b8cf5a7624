// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-account-sync server and client. It aggregates all sub-configurations and
// is populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters, the
	// credential hashing algorithm and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the server account database and the
	// client-local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and rate limiting settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server-side account database connection settings.
	DB DB `envPrefix:"DB_"`

	// Local holds the client-side session database settings.
	Local Local `envPrefix:"LOCAL_"`
}

// App holds application-level configuration values that control security,
// token lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHasher selects the credential hashing algorithm:
	// "argon2id" or "bcrypt".
	// Env: APP_PASSWORD_HASHER
	PasswordHasher string `env:"PASSWORD_HASHER"`

	// BcryptCost is the work factor used when PasswordHasher is "bcrypt".
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Integrity checks are off when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, timeout and throttling settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRPS is the sustained per-client request rate allowed on the
	// credential endpoints (register, login, delete-user).
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the token bucket size for the credential endpoints.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// DB holds connection settings for the account database.
type DB struct {
	// DSN is the PostgreSQL connection string, or "memory" for the in-process
	// account store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds settings for the client-local session database.
type Local struct {
	// DSN is the SQLite file path of the session cache.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the outbound connection settings used by the client.
type Adapter struct {
	// HTTPAddress is the base address of the account server
	// (e.g. "localhost:8080" or "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger output settings.
type Log struct {
	// File is the path the client writes its log to. The terminal UI owns
	// stdout, so the client never logs there.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
