package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
)

// memoryAccountRepository keeps accounts in process memory. It backs the
// "memory" DSN and service-level tests.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
	now      func() time.Time
}

// NewMemoryAccountRepository returns an empty in-process [AccountRepository].
func NewMemoryAccountRepository(logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating in-memory account repository")
	return &memoryAccountRepository{
		accounts: make(map[string]models.Account),
		now:      time.Now,
	}
}

func (m *memoryAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[account.Identity]; ok {
		return models.Account{}, ErrIdentityAlreadyExists
	}

	account.CreatedAt = m.now().UTC()
	account.LastUpdate = nil
	m.accounts[account.Identity] = account

	return account, nil
}

func (m *memoryAccountRepository) FindAccountByIdentity(ctx context.Context, identity string) (models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[identity]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}

	return account, nil
}

func (m *memoryAccountRepository) SaveWorkingData(ctx context.Context, identity, workingData string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[identity]
	if !ok {
		return ErrAccountNotFound
	}

	now := m.now().UTC()
	account.WorkingData = workingData
	account.LastUpdate = &now
	m.accounts[identity] = account

	return nil
}

func (m *memoryAccountRepository) DeleteAccount(ctx context.Context, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[identity]; !ok {
		return ErrAccountNotFound
	}
	delete(m.accounts, identity)

	return nil
}
