package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/adapter"
	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/internal/tui"
	"github.com/MKhiriev/go-account-sync/models"
)

// App owns the client process: the local session cache, the server adapter,
// the sync coordinator and the terminal UI on top of them.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens the local cache and wires the client components. The
// coordinator is left cold until Run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, logger)

	return &App{
		storages: storages,
		services: services,
		ui:       tui.New(services.Coordinator, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run restores the cached session and blocks in the UI until the user
// quits. The local cache is closed on return; a signed-in session stays
// cached for the next start.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close local storage")
		}
	}()

	a.start(ctx)

	return a.ui.Run(ctx)
}

func (a *App) start(ctx context.Context) models.SyncSnapshot {
	fmt.Println("Восстановление сессии...")

	snapshot, err := a.services.Coordinator.Start(a.logger.WithContext(ctx))
	if err != nil {
		// an unreadable cache starts the client signed out
		a.logger.Err(err).Msg("session restore failed")
	}
	a.logger.Info().
		Str("state", snapshot.State.String()).
		Str("identity", snapshot.Identity).
		Msg("client started")
	return snapshot
}
