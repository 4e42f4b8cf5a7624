package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/models"
)

type clientSessionCache struct {
	repository store.LocalSessionRepository
	logger     *logger.Logger
}

func NewClientSessionCache(repository store.LocalSessionRepository, logger *logger.Logger) ClientSessionCache {
	return &clientSessionCache{repository: repository, logger: logger}
}

func (c *clientSessionCache) Restore(ctx context.Context) (models.Session, error) {
	session, err := c.repository.Load(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "clientSessionCache.Restore").Msg("failed to restore session")
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return session, nil
}

func (c *clientSessionCache) Begin(ctx context.Context, identity, workingData, token string) error {
	if identity == "" {
		return store.ErrInvalidSession
	}

	err := c.repository.Save(ctx, models.Session{
		Active:      true,
		Identity:    identity,
		WorkingData: workingData,
		Token:       token,
	})
	if err != nil {
		c.logger.Err(err).Str("func", "clientSessionCache.Begin").Str("identity", identity).Msg("failed to begin session")
		return fmt.Errorf("begin session: %w", err)
	}

	return nil
}

func (c *clientSessionCache) UpdateWorkingData(ctx context.Context, workingData string) error {
	if err := c.repository.UpdateWorkingData(ctx, workingData); err != nil {
		c.logger.Err(err).Str("func", "clientSessionCache.UpdateWorkingData").Msg("failed to update working data")
		return fmt.Errorf("update working data: %w", err)
	}

	return nil
}

func (c *clientSessionCache) SetToken(ctx context.Context, token string) error {
	if err := c.repository.UpdateToken(ctx, token); err != nil {
		c.logger.Err(err).Str("func", "clientSessionCache.SetToken").Msg("failed to update token")
		return fmt.Errorf("update token: %w", err)
	}

	return nil
}

func (c *clientSessionCache) End(ctx context.Context) error {
	if err := c.repository.Clear(ctx); err != nil {
		c.logger.Err(err).Str("func", "clientSessionCache.End").Msg("failed to end session")
		return fmt.Errorf("end session: %w", err)
	}

	return nil
}
