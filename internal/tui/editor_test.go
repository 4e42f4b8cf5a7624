package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-account-sync/internal/mock"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func signedInSnapshot(data string) models.SyncSnapshot {
	return models.SyncSnapshot{
		State:       models.StateAuthenticated,
		Identity:    "alice@example.com",
		WorkingData: data,
	}
}

func newTestEditor(t *testing.T, snapshot models.SyncSnapshot) (*EditorModel, *mock.MockSyncCoordinator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	coordinator := mock.NewMockSyncCoordinator(ctrl)

	m := NewEditorModel(context.Background(), coordinator)
	m.Update(EditorOpened{Snapshot: snapshot})
	return m, coordinator
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// triggerResult executes the command returned by a coordinator trigger and
// returns the snapshotMsg it produced.
func triggerResult(t *testing.T, cmd tea.Cmd) snapshotMsg {
	t.Helper()
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "trigger must return a batch")

	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(snapshotMsg); ok {
			return msg
		}
	}
	t.Fatal("no snapshotMsg in batch")
	return snapshotMsg{}
}

func TestEditor_OpenShowsWorkingDataAndStaleWarning(t *testing.T) {
	snapshot := signedInSnapshot("notes")
	snapshot.Stale = true
	m, _ := newTestEditor(t, snapshot)

	assert.Equal(t, "notes", m.area.Value())
	view := m.View()
	assert.Contains(t, view, "alice@example.com")
	assert.Contains(t, view, "могут быть устаревшими")
}

func TestEditor_TypingWritesThrough(t *testing.T) {
	m, coordinator := newTestEditor(t, signedInSnapshot("notes"))

	coordinator.EXPECT().Edit(gomock.Any(), "notes!").Return(signedInSnapshot("notes!"), nil)

	typeText(m, "!")

	assert.Equal(t, "notes!", m.area.Value())
	assert.Equal(t, "notes!", m.snapshot.WorkingData)
	assert.Empty(t, m.errMsg)
}

func TestEditor_EditFailureRevertsText(t *testing.T) {
	m, coordinator := newTestEditor(t, signedInSnapshot("notes"))

	coordinator.EXPECT().Edit(gomock.Any(), "notes!").Return(signedInSnapshot("notes"), errors.New("disk full"))

	typeText(m, "!")

	assert.Equal(t, "notes", m.area.Value())
	assert.Equal(t, "disk full", m.errMsg)
}

func TestEditor_SaveNow(t *testing.T) {
	m, coordinator := newTestEditor(t, signedInSnapshot("notes"))

	coordinator.EXPECT().SaveNow(gomock.Any()).Return(signedInSnapshot("notes"), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.sync.running)

	result := triggerResult(t, cmd)
	assert.Equal(t, opSave, result.op)

	m.Update(result)
	assert.False(t, m.sync.running)
	assert.Equal(t, "Сохранено на сервере", m.status)
}

func TestEditor_IgnoresKeysWhileBusy(t *testing.T) {
	m, _ := newTestEditor(t, signedInSnapshot("notes"))
	m.sync.running = true

	// no Edit expectation: the key must not reach the coordinator
	_, cmd := m.Update(runes("x"))

	assert.Nil(t, cmd)
	assert.Equal(t, "notes", m.area.Value())
}

func TestEditor_LogoutSuccessReturnsToMenu(t *testing.T) {
	m, coordinator := newTestEditor(t, signedInSnapshot("notes"))

	coordinator.EXPECT().Logout(gomock.Any()).Return(models.SyncSnapshot{State: models.StateUnauthenticated}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	_, cmd = m.Update(triggerResult(t, cmd))

	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
	assert.IsType(t, SignedOutNotice{}, nav.Payload)
}

func TestEditor_LogoutFailureShowsRecoveryOptions(t *testing.T) {
	m, _ := newTestEditor(t, signedInSnapshot("notes"))

	failed := signedInSnapshot("notes")
	failed.SyncFailed = true
	m.Update(snapshotMsg{op: opLogout, snapshot: failed, err: service.ErrServerUnavailable})

	assert.Equal(t, overlaySyncFailed, m.overlay)
	assert.False(t, m.syncFailed.tokenExpired)
	assert.Contains(t, m.View(), "Локальные изменения сохранены")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, overlayNone, m.overlay)
	assert.Contains(t, m.View(), "не сохранённые на сервере")
}

func TestEditor_RetryAndDiscardAfterFailedLogout(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		expect func(c *mock.MockSyncCoordinator)
		wantOp operation
	}{
		{
			name: "retry",
			key:  "r",
			expect: func(c *mock.MockSyncCoordinator) {
				c.EXPECT().Logout(gomock.Any()).Return(models.SyncSnapshot{State: models.StateUnauthenticated}, nil)
			},
			wantOp: opLogout,
		},
		{
			name: "discard",
			key:  "d",
			expect: func(c *mock.MockSyncCoordinator) {
				c.EXPECT().DiscardAndLogout(gomock.Any()).Return(models.SyncSnapshot{State: models.StateUnauthenticated}, nil)
			},
			wantOp: opDiscard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, coordinator := newTestEditor(t, signedInSnapshot("notes"))
			m.Update(snapshotMsg{op: opLogout, snapshot: signedInSnapshot("notes"), err: service.ErrServerUnavailable})
			tt.expect(coordinator)

			_, cmd := m.Update(runes(tt.key))
			result := triggerResult(t, cmd)

			assert.Equal(t, tt.wantOp, result.op)
			assert.Equal(t, models.StateUnauthenticated, result.snapshot.State)
		})
	}
}

func TestEditor_ReauthThenLogout(t *testing.T) {
	m, coordinator := newTestEditor(t, signedInSnapshot("notes"))
	m.Update(snapshotMsg{op: opLogout, snapshot: signedInSnapshot("notes"), err: service.ErrTokenIsExpiredOrInvalid})
	require.True(t, m.syncFailed.tokenExpired)

	m.Update(runes("a"))
	require.Equal(t, overlayReauth, m.overlay)
	typeText(m, "pw")

	gomock.InOrder(
		coordinator.EXPECT().Reauthenticate(gomock.Any(), "pw").Return(signedInSnapshot("notes"), nil),
		coordinator.EXPECT().Logout(gomock.Any()).Return(models.SyncSnapshot{State: models.StateUnauthenticated}, nil),
	)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = m.Update(triggerResult(t, cmd))

	result := triggerResult(t, cmd)
	assert.Equal(t, opLogout, result.op)
	assert.Equal(t, overlayNone, m.overlay)
}

func TestEditor_ReauthWrongSecretKeepsPrompt(t *testing.T) {
	m, _ := newTestEditor(t, signedInSnapshot("notes"))
	m.Update(snapshotMsg{op: opLogout, snapshot: signedInSnapshot("notes"), err: service.ErrTokenIsExpiredOrInvalid})
	m.Update(runes("a"))

	m.Update(snapshotMsg{op: opReauth, snapshot: signedInSnapshot("notes"), err: service.ErrWrongSecret})

	assert.Equal(t, overlayReauth, m.overlay)
	assert.Equal(t, "Неверный логин или пароль", m.prompt.errMsg)
}

func TestEditor_DeleteAccount(t *testing.T) {
	m, coordinator := newTestEditor(t, signedInSnapshot("notes"))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Equal(t, overlayDelete, m.overlay)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Пароль обязателен", m.prompt.errMsg)

	typeText(m, "pw")
	coordinator.EXPECT().DeleteAccount(gomock.Any(), "pw").Return(models.SyncSnapshot{State: models.StateUnauthenticated}, nil)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = m.Update(triggerResult(t, cmd))

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
	assert.Equal(t, SignedOutNotice{Message: "Аккаунт удалён"}, nav.Payload)
}

func TestEditor_SaveFailureShowsError(t *testing.T) {
	m, _ := newTestEditor(t, signedInSnapshot("notes"))

	m.Update(snapshotMsg{op: opSave, snapshot: signedInSnapshot("notes"), err: service.ErrServerUnavailable})

	assert.Equal(t, overlayError, m.overlay)
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", m.errOverlay.message)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, overlayNone, m.overlay)
}
