package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the sync client. All state changes go
// through the coordinator; the pages only render snapshots.
type TUI struct {
	coordinator service.SyncCoordinator
	buildInfo   models.AppBuildInfo
	logger      *logger.Logger
}

func New(coordinator service.SyncCoordinator, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{coordinator: coordinator, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits. The coordinator must already be started:
// a resumed session opens the editor directly, otherwise the menu is shown.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("tui: %w", err)
	}

	t.logger.Info().Str("state", t.coordinator.Snapshot().State.String()).Msg("tui closed")
	return nil
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	ctx = t.logger.WithContext(ctx)

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(ctx, t.coordinator),
		pageLogin:    NewLoginModel(ctx, t.coordinator),
		pageRegister: NewRegisterModel(ctx, t.coordinator),
		pageEditor:   NewEditorModel(ctx, t.coordinator),
	}

	snapshot := t.coordinator.Snapshot()
	if snapshot.State == models.StateAuthenticated {
		return NewRootModel(pages, pageEditor, EditorOpened{Snapshot: snapshot}, t.buildInfo)
	}
	return NewRootModel(pages, pageMenu, nil, t.buildInfo)
}
