package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/crypto"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
)

// dummySecret is hashed once at construction. Login verifies against its hash
// when the identity is unknown so both failure paths cost one verification.
const dummySecret = "account-does-not-exist"

// accountService is the concrete implementation of AccountService.
// It handles registration, credential verification, working data storage and
// the JWT token lifecycle.
type accountService struct {
	// accountRepository is the data-access layer for account records.
	accountRepository store.AccountRepository

	// verifier hashes secrets at registration and checks them at login and
	// deletion.
	verifier crypto.CredentialVerifier

	// dummyHash is the hash of dummySecret.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repository and verifier, populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAccountService(accountRepository store.AccountRepository, verifier crypto.CredentialVerifier, cfg config.App, logger *logger.Logger) (AccountService, error) {
	dummyHash, err := verifier.Hash(dummySecret)
	if err != nil {
		return nil, fmt.Errorf("error preparing credential verifier: %w", err)
	}

	return &accountService{
		accountRepository: accountRepository,
		verifier:          verifier,
		dummyHash:         dummyHash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}, nil
}

// Register hashes secret and stores a new account with empty working data.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if identity or secret is empty.
//   - store.ErrIdentityAlreadyExists (wrapped) if the identity is taken.
//   - A wrapped storage error for any other repository failure.
func (a *accountService) Register(ctx context.Context, identity, secret string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if identity == "" || secret == "" {
		log.Error().Str("identity", identity).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	hash, err := a.verifier.Hash(secret)
	if err != nil {
		log.Err(err).Str("identity", identity).Msg("hashing secret failed")
		return models.Account{}, fmt.Errorf("hashing secret failed: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Identity:       identity,
		CredentialHash: hash,
	})
	if err != nil {
		log.Err(err).Str("identity", identity).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account, nil
}

// Login looks up the account and checks secret against the stored hash.
//
// Returns the account (including its working data) or:
//   - ErrInvalidDataProvided if identity or secret is empty.
//   - store.ErrAccountNotFound (wrapped) if no such account exists.
//   - ErrWrongSecret if the secret does not verify.
func (a *accountService) Login(ctx context.Context, identity, secret string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if identity == "" || secret == "" {
		log.Error().Str("identity", identity).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			a.verifier.Verify(secret, a.dummyHash)
		}
		log.Err(err).Str("identity", identity).Msg("account search by identity failed")
		return models.Account{}, fmt.Errorf("account search by identity failed: %w", err)
	}

	if !a.verifier.Verify(secret, account.CredentialHash) {
		log.Error().Str("identity", identity).Msg("wrong secret")
		return models.Account{}, ErrWrongSecret
	}

	return account, nil
}

// SaveData replaces the working data of an existing account. It never
// creates an account.
func (a *accountService) SaveData(ctx context.Context, identity, workingData string) error {
	log := logger.FromContext(ctx)

	if identity == "" {
		log.Error().Msg("no identity provided for saving data")
		return ErrInvalidDataProvided
	}

	if err := a.accountRepository.SaveWorkingData(ctx, identity, workingData); err != nil {
		log.Err(err).Str("identity", identity).Msg("saving working data failed")
		return fmt.Errorf("saving working data failed: %w", err)
	}

	return nil
}

// DeleteAccount removes the account after checking secret again.
//
// Returns store.ErrAccountNotFound (wrapped) or ErrWrongSecret on failure;
// nothing is deleted in either case.
func (a *accountService) DeleteAccount(ctx context.Context, identity, secret string) error {
	log := logger.FromContext(ctx)

	if identity == "" || secret == "" {
		log.Error().Str("identity", identity).Msg("invalid account data provided")
		return ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByIdentity(ctx, identity)
	if err != nil {
		log.Err(err).Str("identity", identity).Msg("account search by identity failed")
		return fmt.Errorf("account search by identity failed: %w", err)
	}

	if !a.verifier.Verify(secret, account.CredentialHash) {
		log.Error().Str("identity", identity).Msg("wrong secret on account deletion")
		return ErrWrongSecret
	}

	if err = a.accountRepository.DeleteAccount(ctx, identity); err != nil {
		log.Err(err).Str("identity", identity).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT whose subject is the account identity.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *accountService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.Identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *accountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
