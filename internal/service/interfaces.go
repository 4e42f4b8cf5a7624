package service

import (
	"context"

	"github.com/MKhiriev/go-account-sync/models"
)

// AccountService implements the account operations behind the HTTP routes.
// It keeps no per-request state between calls.
type AccountService interface {
	// Register creates an account with an empty working data blob.
	// Fails with ErrInvalidDataProvided or store.ErrIdentityAlreadyExists.
	Register(ctx context.Context, identity, secret string) (models.Account, error)
	// Login returns the stored account when secret matches.
	// Fails with store.ErrAccountNotFound or ErrWrongSecret.
	Login(ctx context.Context, identity, secret string) (models.Account, error)
	// SaveData overwrites the working data of an existing account.
	SaveData(ctx context.Context, identity, workingData string) error
	// DeleteAccount re-verifies secret and removes the account.
	DeleteAccount(ctx context.Context, identity, secret string) error

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}
