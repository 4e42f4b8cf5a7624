package service

import (
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/crypto"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	verifier, err := crypto.NewCredentialVerifier(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating credential verifier: %w", err)
	}

	accountService, err := NewAccountService(storages.AccountRepository, verifier, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating account service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AccountService: NewAccountValidationService().Wrap(accountService),
		AppInfoService: appInfoService,
	}, nil
}
