package service

import (
	"context"

	"github.com/MKhiriev/go-account-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionCache is the client-local session record: who is signed in and
// the working data they are editing. Every mutation replaces the stored
// fields as a unit.
type ClientSessionCache interface {
	// Restore reads the persisted session. Returns an inactive session when
	// nothing is stored.
	Restore(ctx context.Context) (models.Session, error)

	// Begin starts a session for identity, overwriting whatever was stored.
	Begin(ctx context.Context, identity, workingData, token string) error

	// UpdateWorkingData replaces the cached working data. Writing the same
	// value twice has the same effect as writing it once. Returns
	// store.ErrNoActiveSession when no session is active.
	UpdateWorkingData(ctx context.Context, workingData string) error

	// SetToken refreshes the bearer token of the active session.
	SetToken(ctx context.Context, token string) error

	// End clears the session. The next Restore reports it inactive.
	End(ctx context.Context) error
}

// SyncCoordinator drives the client session lifecycle. It owns the state
// machine, decides when the cache and the server are read or written, and
// reports the outcome of each trigger as a snapshot.
//
// Triggers arriving while another one is running fail fast with
// ErrOperationInProgress; triggers not allowed in the current state fail with
// ErrInvalidTransition. Neither changes any state.
type SyncCoordinator interface {
	// Start restores the cached session without contacting the server.
	Start(ctx context.Context) (models.SyncSnapshot, error)

	// Login authenticates against the server and replaces the cache with the
	// server copy of the working data.
	Login(ctx context.Context, identity, secret string) (models.SyncSnapshot, error)

	// Register creates an account on the server. It does not sign in.
	Register(ctx context.Context, identity, secret string) error

	// Edit writes working data through to the cache only.
	Edit(ctx context.Context, workingData string) (models.SyncSnapshot, error)

	// Logout pushes the cached working data and clears the cache only when
	// the push succeeded. On failure the session stays authenticated and the
	// snapshot has SyncFailed set.
	Logout(ctx context.Context) (models.SyncSnapshot, error)

	// DiscardAndLogout clears the cache without pushing.
	DiscardAndLogout(ctx context.Context) (models.SyncSnapshot, error)

	// SaveNow pushes the cached working data and stays signed in.
	SaveNow(ctx context.Context) (models.SyncSnapshot, error)

	// Reauthenticate obtains a fresh token for the signed-in identity while
	// keeping the cached working data.
	Reauthenticate(ctx context.Context, secret string) (models.SyncSnapshot, error)

	// DeleteAccount removes the account on the server and then clears the
	// cache.
	DeleteAccount(ctx context.Context, secret string) (models.SyncSnapshot, error)

	// Status asks the server whether it is up.
	Status(ctx context.Context) (string, error)

	// Snapshot returns the current state without side effects.
	Snapshot() models.SyncSnapshot
}
