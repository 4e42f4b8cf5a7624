// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// identity and secret inputs and dispatches an async login on submission.
// A successful [LoginResult] is handled by [RootModel], which opens the
// editor.
type LoginModel struct {
	ctx         context.Context
	coordinator service.SyncCoordinator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The identity field receives focus
// immediately; the secret field uses masked echo.
func NewLoginModel(ctx context.Context, coordinator service.SyncCoordinator) *LoginModel {
	identityInput := textinput.New()
	identityInput.Placeholder = "email"
	identityInput.CharLimit = 254
	identityInput.Width = 40
	identityInput.Focus()

	secretInput := newSecretInput("password")

	return &LoginModel{
		ctx:         ctx,
		coordinator: coordinator,
		inputs:      []textinput.Model{identityInput, secretInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult] clears the submitting state; on error, populates errMsg.
//   - esc navigates back to the menu.
//   - tab / shift+tab move focus between inputs.
//   - enter validates the inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.resetForm()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focus = cycleFocus(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = cycleFocus(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			identity := strings.TrimSpace(m.inputs[0].Value())
			secret := m.inputs[1].Value()
			if identity == "" || secret == "" {
				m.errMsg = "Логин и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(identity, secret)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(identity, secret string) tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator

	return func() tea.Msg {
		snapshot, err := coordinator.Login(ctx, identity, secret)
		return LoginResult{Identity: identity, Snapshot: snapshot, Err: err}
	}
}

func (m *LoginModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func newSecretInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// cycleFocus moves focus by step and returns the new index.
func cycleFocus(inputs []textinput.Model, focus, step int) int {
	inputs[focus].Blur()
	focus = (focus + step + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
