package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-account-sync/internal/mock"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCoordinator(t *testing.T) *mock.MockSyncCoordinator {
	t.Helper()
	return mock.NewMockSyncCoordinator(gomock.NewController(t))
}

func TestMenu_Navigation(t *testing.T) {
	m := NewMenuModel(context.Background(), newTestCoordinator(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())
}

func TestMenu_ServerStatus(t *testing.T) {
	coordinator := newTestCoordinator(t)
	m := NewMenuModel(context.Background(), coordinator)

	coordinator.EXPECT().Status(gomock.Any()).Return("server is running", nil)

	_, cmd := m.Update(runes("t"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Проверка сервера")

	m.Update(cmd())
	assert.Contains(t, m.View(), "Сервер: server is running")

	coordinator.EXPECT().Status(gomock.Any()).Return("", service.ErrServerUnavailable)

	_, cmd = m.Update(runes("t"))
	m.Update(cmd())
	assert.Contains(t, m.View(), "Сервер недоступен")
}

func TestMenu_Notices(t *testing.T) {
	m := NewMenuModel(context.Background(), newTestCoordinator(t))

	m.Update(RegisterSuccessNotice{Identity: "alice@example.com"})
	assert.Contains(t, m.View(), "alice@example.com")

	m.Update(SignedOutNotice{Message: "Аккаунт удалён"})
	assert.Contains(t, m.View(), "Аккаунт удалён")
}

func TestLogin_Submit(t *testing.T) {
	coordinator := newTestCoordinator(t)
	m := NewLoginModel(context.Background(), coordinator)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Логин и пароль обязательны", m.errMsg)

	typeText(m, "alice@example.com")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "pw")

	coordinator.EXPECT().Login(gomock.Any(), "alice@example.com", "pw").Return(signedInSnapshot("notes"), nil)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, "notes", result.Snapshot.WorkingData)

	m.Update(result)
	assert.False(t, m.submitting)
	assert.Empty(t, m.inputs[0].Value())
}

func TestLogin_WrongSecret(t *testing.T) {
	m := NewLoginModel(context.Background(), newTestCoordinator(t))
	m.submitting = true

	m.Update(LoginResult{Identity: "alice@example.com", Err: service.ErrWrongSecret})

	assert.False(t, m.submitting)
	assert.Equal(t, "Неверный логин или пароль", m.errMsg)
}

func TestRegister_Submit(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		repeat  string
		wantErr string
		call    bool
	}{
		{name: "mismatch", secret: "pw", repeat: "other", wantErr: "Пароли не совпадают"},
		{name: "empty repeat", secret: "pw", repeat: "", wantErr: "Все поля обязательны"},
		{name: "ok", secret: "pw", repeat: "pw", call: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coordinator := newTestCoordinator(t)
			m := NewRegisterModel(context.Background(), coordinator)

			typeText(m, "alice@example.com")
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			typeText(m, tt.secret)
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			typeText(m, tt.repeat)

			if tt.call {
				coordinator.EXPECT().Register(gomock.Any(), "alice@example.com", tt.secret).Return(nil)
			}

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if !tt.call {
				assert.Nil(t, cmd)
				assert.Equal(t, tt.wantErr, m.errMsg)
				return
			}

			_, cmd = m.Update(cmd())
			assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Identity: "alice@example.com"}}, cmd())
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	m := NewRegisterModel(context.Background(), newTestCoordinator(t))
	m.submitting = true

	_, cmd := m.Update(RegisterResult{Identity: "alice@example.com", Err: store.ErrIdentityAlreadyExists})

	assert.Nil(t, cmd)
	assert.Equal(t, "Пользователь уже существует", m.errMsg)
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Дождитесь завершения текущей операции", humanizeError(service.ErrOperationInProgress))
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", humanizeError(errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")))
	assert.Equal(t, "disk full", humanizeError(errors.New("disk full")))
}
