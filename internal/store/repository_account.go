package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount runs a single INSERT ... ON CONFLICT DO NOTHING RETURNING.
// Two concurrent registrations of one identity cannot both succeed: the loser
// gets no row back and is reported as [ErrIdentityAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAccountQuery(account.Identity, account.CredentialHash, account.WorkingData)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building query")
		return models.Account{}, err
	}

	var created models.Account
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.Identity, &created.CredentialHash, &created.WorkingData, &created.CreatedAt, &created.LastUpdate)
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.UniqueViolation:
		log.Debug().Str("func", "*accountRepository.CreateAccount").Msg("identity is already taken")
		return models.Account{}, ErrIdentityAlreadyExists
	default:
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, r.wrap(err, ErrExecutingStatement)
	}
}

// FindAccountByIdentity selects the account row by its primary key.
func (r *accountRepository) FindAccountByIdentity(ctx context.Context, identity string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(identity)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByIdentity").Msg("error building query")
		return models.Account{}, err
	}

	var found models.Account
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.Identity, &found.CredentialHash, &found.WorkingData, &found.CreatedAt, &found.LastUpdate)
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrAccountNotFound
	default:
		log.Err(err).Str("func", "*accountRepository.FindAccountByIdentity").Msg("error selecting account")
		return models.Account{}, r.wrap(err, ErrExecutingQuery)
	}
}

// SaveWorkingData updates working_data and last_update in one statement.
func (r *accountRepository) SaveWorkingData(ctx context.Context, identity, workingData string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveWorkingDataQuery(identity, workingData)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.SaveWorkingData").Msg("error building query")
		return err
	}

	return r.execAffectingOne(ctx, "*accountRepository.SaveWorkingData", query, args)
}

// DeleteAccount removes the account row.
func (r *accountRepository) DeleteAccount(ctx context.Context, identity string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(identity)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error building query")
		return err
	}

	return r.execAffectingOne(ctx, "*accountRepository.DeleteAccount", query, args)
}

func (r *accountRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return r.wrap(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return r.wrap(err, ErrExecutingStatement)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) wrap(err, kind error) error {
	if r.db.retryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
