package store

import (
	"context"

	"github.com/MKhiriev/go-account-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the durable keyed store of accounts.
type AccountRepository interface {
	// CreateAccount inserts the account if no account with the same identity
	// exists, as a single atomic operation. Returns ErrIdentityAlreadyExists
	// otherwise.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindAccountByIdentity returns ErrAccountNotFound when absent.
	FindAccountByIdentity(ctx context.Context, identity string) (models.Account, error)
	// SaveWorkingData overwrites working data and bumps last_update.
	// Returns ErrAccountNotFound when absent; never creates.
	SaveWorkingData(ctx context.Context, identity, workingData string) error
	// DeleteAccount returns ErrAccountNotFound when absent.
	DeleteAccount(ctx context.Context, identity string) error
}
