package config

import "time"

// Hasher names accepted by App.PasswordHasher.
const (
	HasherArgon2id = "argon2id"
	HasherBcrypt   = "bcrypt"
)

// MemoryDSN selects the in-process account store instead of PostgreSQL.
const MemoryDSN = "memory"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    "go-account-sync",
			TokenDuration:  time.Hour,
			PasswordHasher: HasherArgon2id,
			BcryptCost:     10,
			Version:        "dev",
		},
		Storage: Storage{
			DB:    DB{DSN: MemoryDSN},
			Local: Local{DSN: "session.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
			RateLimitRPS:   5,
			RateLimitBurst: 10,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Log: Log{File: "client.log"},
	}
}
