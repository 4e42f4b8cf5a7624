package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localSessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	err := l.DB.QueryRowContext(ctx, loadSession).
		Scan(&session.Active, &session.Identity, &session.WorkingData, &session.Token, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "localSessionRepository.Load").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !session.Valid() {
		log.Warn().Str("func", "localSessionRepository.Load").Msg("persisted session has no identity")
		return models.Session{}, ErrInvalidSession
	}

	return session, nil
}

func (l *localSessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if !session.Valid() {
		return ErrInvalidSession
	}

	_, err := l.DB.ExecContext(ctx, saveSession,
		session.Active,
		session.Identity,
		session.WorkingData,
		session.Token,
		l.now().UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.Save").
			Str("identity", session.Identity).
			Msg("failed to upsert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) UpdateWorkingData(ctx context.Context, workingData string) error {
	return l.updateActive(ctx, "localSessionRepository.UpdateWorkingData", updateSessionWorkingData, workingData)
}

func (l *localSessionRepository) UpdateToken(ctx context.Context, token string) error {
	return l.updateActive(ctx, "localSessionRepository.UpdateToken", updateSessionToken, token)
}

func (l *localSessionRepository) updateActive(ctx context.Context, funcName, query, value string) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, query, value, l.now().UTC())
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to update session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoActiveSession
	}

	return nil
}

func (l *localSessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, clearSession); err != nil {
		log.Err(err).Str("func", "localSessionRepository.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
