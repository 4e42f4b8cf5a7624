package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityAlreadyExists is returned when an account with the same
	// identity already exists. Creation never overwrites.
	ErrIdentityAlreadyExists = errors.New("identity already exists")

	// ErrAccountNotFound is returned when no account matches the identity.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNoActiveSession is returned when the local session cache is asked to
	// modify a session that is not active.
	ErrNoActiveSession = errors.New("no active session")

	// ErrInvalidSession is returned when a session violates the
	// active-implies-identity invariant.
	ErrInvalidSession = errors.New("invalid session")

	// ErrStorageUnavailable wraps transient database failures.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
