package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/validators"
	"github.com/MKhiriev/go-account-sync/models"
)

// AccountValidationService checks request shape before handing the call to
// the wrapped AccountService. Validation failures wrap both
// ErrInvalidDataProvided and the validator's own error.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) Register(ctx context.Context, identity, secret string) (models.Account, error) {
	// only well-formed addresses and hashable secrets may become accounts
	request := models.CredentialsRequest{Identity: identity, Secret: secret}
	err := v.validator.Validate(ctx, request,
		validators.FieldIdentity,
		validators.FieldIdentityLength,
		validators.FieldIdentityFormat,
		validators.FieldSecret,
		validators.FieldSecretLength,
	)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, identity, secret)
}

// Login checks presence only. Oversized values are left to the lookup and the
// verifier so that every wrong secret fails the same way.
func (v *AccountValidationService) Login(ctx context.Context, identity, secret string) (models.Account, error) {
	request := models.CredentialsRequest{Identity: identity, Secret: secret}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, identity, secret)
}

func (v *AccountValidationService) SaveData(ctx context.Context, identity, workingData string) error {
	request := models.SaveDataRequest{Identity: identity, WorkingData: workingData}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveData(ctx, identity, workingData)
}

func (v *AccountValidationService) DeleteAccount(ctx context.Context, identity, secret string) error {
	request := models.CredentialsRequest{Identity: identity, Secret: secret}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteAccount(ctx, identity, secret)
}

func (v *AccountValidationService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return v.inner.CreateToken(ctx, account)
}

func (v *AccountValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AccountValidationService) Wrap(wrapper AccountService) AccountService {
	v.inner = wrapper
	return v
}
