package service

import (
	"github.com/MKhiriev/go-account-sync/internal/adapter"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/store"
)

// ClientServices groups the client-side services handed to the TUI.
type ClientServices struct {
	SessionCache ClientSessionCache
	Coordinator  SyncCoordinator
}

// NewClientServices wires the session cache on top of the local storages and
// builds the coordinator around it. The coordinator is left in COLD state;
// the caller runs Start before handing it to the UI.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	cache := NewClientSessionCache(storages.SessionRepository, logger)

	return &ClientServices{
		SessionCache: cache,
		Coordinator:  NewSyncCoordinator(cache, serverAdapter, logger),
	}
}
