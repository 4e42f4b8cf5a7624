// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, STORAGE_, SERVER_, ADAPTER_ and LOG_
// variables declared by the struct tags. Hasher names are case-insensitive,
// so APP_PASSWORD_HASHER=Argon2id is read as "argon2id".
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.PasswordHasher = strings.ToLower(strings.TrimSpace(cfg.App.PasswordHasher))
	return nil
}
