package store

import (
	"context"

	"github.com/MKhiriev/go-account-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository persists the single client session record.
type LocalSessionRepository interface {
	// Load returns an inactive session when nothing is persisted.
	Load(ctx context.Context) (models.Session, error)
	// Save replaces the whole record in one statement.
	Save(ctx context.Context, session models.Session) error
	// UpdateWorkingData replaces working data of the active session.
	// Returns ErrNoActiveSession when no session is active.
	UpdateWorkingData(ctx context.Context, workingData string) error
	// UpdateToken replaces the bearer token of the active session.
	UpdateToken(ctx context.Context, token string) error
	// Clear removes the record.
	Clear(ctx context.Context) error
}
