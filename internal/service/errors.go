package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongSecret         = errors.New("wrong secret")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrAccessDenied            = errors.New("access denied to another account's data")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrOperationInProgress is returned when a trigger arrives while another
	// operation of the sync coordinator is still running.
	ErrOperationInProgress = errors.New("another operation is in progress")

	// ErrInvalidTransition is returned when a trigger is not allowed in the
	// current coordinator state.
	ErrInvalidTransition = errors.New("operation not allowed in current state")

	// ErrServerUnavailable is returned when the server cannot be reached or
	// answered with an unexpected status.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrRateLimited is returned when the server throttled the request.
	ErrRateLimited = errors.New("too many requests")
)
