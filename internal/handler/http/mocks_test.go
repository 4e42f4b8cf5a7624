package http

import (
	"context"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/models"
)

// mockAccountService implements service.AccountService. Each method field can
// be overridden per test case; an unset field panics when called.
type mockAccountService struct {
	registerFn      func(ctx context.Context, identity, secret string) (models.Account, error)
	loginFn         func(ctx context.Context, identity, secret string) (models.Account, error)
	saveDataFn      func(ctx context.Context, identity, workingData string) error
	deleteAccountFn func(ctx context.Context, identity, secret string) error
	createTokenFn   func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAccountService) Register(ctx context.Context, identity, secret string) (models.Account, error) {
	return m.registerFn(ctx, identity, secret)
}

func (m *mockAccountService) Login(ctx context.Context, identity, secret string) (models.Account, error) {
	return m.loginFn(ctx, identity, secret)
}

func (m *mockAccountService) SaveData(ctx context.Context, identity, workingData string) error {
	return m.saveDataFn(ctx, identity, workingData)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, identity, secret string) error {
	return m.deleteAccountFn(ctx, identity, secret)
}

func (m *mockAccountService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return m.createTokenFn(ctx, account)
}

func (m *mockAccountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestHandler builds a Handler around the given account service with
// throttling and integrity checks off.
func newTestHandler(accounts service.AccountService) *Handler {
	return NewHandler(&service.Services{
		AccountService: accounts,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, config.StructuredConfig{}, logger.Nop())
}
