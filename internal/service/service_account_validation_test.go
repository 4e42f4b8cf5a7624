package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-sync/internal/validators"
	"github.com/MKhiriev/go-account-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerAccountService struct {
	calls int

	registerFn func(ctx context.Context, identity, secret string) (models.Account, error)
	loginFn    func(ctx context.Context, identity, secret string) (models.Account, error)
	saveFn     func(ctx context.Context, identity, workingData string) error
	deleteFn   func(ctx context.Context, identity, secret string) error
}

func (m *mockInnerAccountService) Register(ctx context.Context, identity, secret string) (models.Account, error) {
	m.calls++
	if m.registerFn != nil {
		return m.registerFn(ctx, identity, secret)
	}
	return models.Account{Identity: identity}, nil
}
func (m *mockInnerAccountService) Login(ctx context.Context, identity, secret string) (models.Account, error) {
	m.calls++
	if m.loginFn != nil {
		return m.loginFn(ctx, identity, secret)
	}
	return models.Account{Identity: identity}, nil
}
func (m *mockInnerAccountService) SaveData(ctx context.Context, identity, workingData string) error {
	m.calls++
	if m.saveFn != nil {
		return m.saveFn(ctx, identity, workingData)
	}
	return nil
}
func (m *mockInnerAccountService) DeleteAccount(ctx context.Context, identity, secret string) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, identity, secret)
	}
	return nil
}
func (m *mockInnerAccountService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	m.calls++
	return models.Token{SignedString: "token-for-" + account.Identity}, nil
}
func (m *mockInnerAccountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	m.calls++
	return models.Token{SignedString: tokenString}, nil
}

func newValidatedAccountService(inner AccountService) AccountService {
	return NewAccountValidationService().Wrap(inner)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAccountValidationService_Register(t *testing.T) {
	tests := []struct {
		name      string
		identity  string
		secret    string
		wantErr   error
		wantCalls int
	}{
		{name: "valid", identity: "ann@example.com", secret: "s3cret", wantCalls: 1},
		{name: "empty identity", identity: "", secret: "s3cret", wantErr: validators.ErrEmptyIdentity},
		{name: "not an email", identity: "ann", secret: "s3cret", wantErr: validators.ErrMalformedIdentity},
		{name: "display name form", identity: "Ann <ann@example.com>", secret: "s3cret", wantErr: validators.ErrMalformedIdentity},
		{name: "empty secret", identity: "ann@example.com", secret: "", wantErr: validators.ErrEmptySecret},
		{name: "secret too long", identity: "ann@example.com", secret: strings.Repeat("x", validators.MaxSecretLen+1), wantErr: validators.ErrSecretTooLong},
		{name: "secret at the limit", identity: "ann@example.com", secret: strings.Repeat("x", validators.MaxSecretLen), wantCalls: 1},
		{name: "identity too long", identity: strings.Repeat("a", validators.MaxIdentityLen) + "@x.com", secret: "s3cret", wantErr: validators.ErrIdentityTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerAccountService{}
			svc := newValidatedAccountService(inner)

			_, err := svc.Register(context.Background(), tt.identity, tt.secret)
			assert.Equal(t, tt.wantCalls, inner.calls)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// Login / DeleteAccount
// ─────────────────────────────────────────────

func TestAccountValidationService_Login_DoesNotCheckFormat(t *testing.T) {
	inner := &mockInnerAccountService{}
	svc := newValidatedAccountService(inner)

	// accounts are looked up by key, format is only enforced at registration
	_, err := svc.Login(context.Background(), "legacy-name", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestAccountValidationService_Login_MissingFields(t *testing.T) {
	inner := &mockInnerAccountService{}
	svc := newValidatedAccountService(inner)

	_, err := svc.Login(context.Background(), "ann@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, inner.calls)
}

func TestAccountValidationService_OversizedCredentialsReachInner(t *testing.T) {
	longSecret := strings.Repeat("x", validators.MaxSecretLen+8)
	longIdentity := strings.Repeat("a", validators.MaxIdentityLen+1)

	tests := []struct {
		name     string
		identity string
		secret   string
		call     func(svc AccountService, identity, secret string) error
	}{
		{
			name:     "login with long secret",
			identity: "ann@example.com",
			secret:   longSecret,
			call: func(svc AccountService, identity, secret string) error {
				_, err := svc.Login(context.Background(), identity, secret)
				return err
			},
		},
		{
			name:     "login with long identity",
			identity: longIdentity,
			secret:   "s3cret",
			call: func(svc AccountService, identity, secret string) error {
				_, err := svc.Login(context.Background(), identity, secret)
				return err
			},
		},
		{
			name:     "delete with long secret",
			identity: "ann@example.com",
			secret:   longSecret,
			call: func(svc AccountService, identity, secret string) error {
				return svc.DeleteAccount(context.Background(), identity, secret)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerAccountService{
				loginFn: func(ctx context.Context, identity, secret string) (models.Account, error) {
					return models.Account{}, ErrWrongSecret
				},
				deleteFn: func(ctx context.Context, identity, secret string) error {
					return ErrWrongSecret
				},
			}
			svc := newValidatedAccountService(inner)

			err := tt.call(svc, tt.identity, tt.secret)
			assert.ErrorIs(t, err, ErrWrongSecret)
			assert.NotErrorIs(t, err, ErrInvalidDataProvided)
			assert.Equal(t, 1, inner.calls)
		})
	}
}

func TestAccountValidationService_DeleteAccount_MissingFields(t *testing.T) {
	inner := &mockInnerAccountService{}
	svc := newValidatedAccountService(inner)

	err := svc.DeleteAccount(context.Background(), "", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, inner.calls)
}

// ─────────────────────────────────────────────
// SaveData
// ─────────────────────────────────────────────

func TestAccountValidationService_SaveData(t *testing.T) {
	tests := []struct {
		name        string
		identity    string
		workingData string
		wantErr     error
	}{
		{name: "valid", identity: "ann@example.com", workingData: "notes"},
		{name: "empty working data is allowed", identity: "ann@example.com", workingData: ""},
		{name: "missing identity", identity: "", workingData: "notes", wantErr: validators.ErrEmptyIdentity},
		{name: "too large", identity: "ann@example.com", workingData: strings.Repeat("x", validators.MaxWorkingDataLen+1), wantErr: validators.ErrWorkingDataTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerAccountService{}
			svc := newValidatedAccountService(inner)

			err := svc.SaveData(context.Background(), tt.identity, tt.workingData)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, 1, inner.calls)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, inner.calls)
		})
	}
}

// ─────────────────────────────────────────────
// Tokens pass through
// ─────────────────────────────────────────────

func TestAccountValidationService_TokensPassThrough(t *testing.T) {
	inner := &mockInnerAccountService{}
	svc := newValidatedAccountService(inner)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Account{Identity: "ann@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-ann@example.com", token.SignedString)

	parsed, err := svc.ParseToken(ctx, "raw")
	require.NoError(t, err)
	assert.Equal(t, "raw", parsed.SignedString)
	assert.Equal(t, 2, inner.calls)
}
