package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{
	"identity",
	"credential_hash",
	"working_data",
	"created_at",
	"last_update",
}

// buildCreateAccountQuery builds an insert-if-absent. A conflicting identity
// yields zero returned rows instead of an error.
func buildCreateAccountQuery(identity, credentialHash, workingData string) (string, []any, error) {
	query, args, err := psql.
		Insert("accounts").
		Columns("identity", "credential_hash", "working_data").
		Values(identity, credentialHash, workingData).
		Suffix("ON CONFLICT (identity) DO NOTHING RETURNING identity, credential_hash, working_data, created_at, last_update").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindAccountQuery(identity string) (string, []any, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"identity": identity}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSaveWorkingDataQuery(identity, workingData string) (string, []any, error) {
	query, args, err := psql.
		Update("accounts").
		Set("working_data", workingData).
		Set("last_update", sq.Expr("NOW()")).
		Where(sq.Eq{"identity": identity}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteAccountQuery(identity string) (string, []any, error) {
	query, args, err := psql.
		Delete("accounts").
		Where(sq.Eq{"identity": identity}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
