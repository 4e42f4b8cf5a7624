package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditorModel is the signed-in page. It shows the working data in a text
// area and drives the coordinator triggers: save, logout, account deletion
// and the recovery options after a failed logout.
type EditorModel struct {
	ctx         context.Context
	coordinator service.SyncCoordinator

	snapshot models.SyncSnapshot
	area     textarea.Model
	sync     syncModel
	busyOp   operation

	overlay    overlay
	syncFailed syncFailedModel
	prompt     secretPromptModel
	errOverlay errorOverlayModel

	// logoutAfterReauth retries the logout once reauthentication succeeds.
	logoutAfterReauth bool

	status string
	errMsg string
}

func NewEditorModel(ctx context.Context, coordinator service.SyncCoordinator) *EditorModel {
	area := textarea.New()
	area.Placeholder = "рабочие данные"
	area.CharLimit = 0
	area.MaxHeight = 0
	area.ShowLineNumbers = false
	area.SetWidth(72)
	area.SetHeight(12)

	return &EditorModel{
		ctx:         ctx,
		coordinator: coordinator,
		area:        area,
		sync:        newSyncModel(),
	}
}

func (m *EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EditorOpened:
		m.open(msg.Snapshot)
		return m, textarea.Blink

	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.area.SetWidth(msg.Width - 8)
		}
		if msg.Height > 16 {
			m.area.SetHeight(msg.Height - 16)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.sync.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.sync.spinner, cmd = m.sync.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		return m.handleResult(msg)

	case serverStatusMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Сервер: " + msg.message
		return m, cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Скопировано в буфер обмена"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.sync.running {
			return m, nil
		}
		switch m.overlay {
		case overlaySyncFailed:
			return m.updateSyncFailed(msg)
		case overlayReauth, overlayDelete:
			return m.updatePrompt(msg)
		case overlayError:
			if key.Matches(msg, keys.enter, keys.esc) {
				m.overlay = overlayNone
			}
			return m, nil
		}
		return m.updateKeys(msg)
	}

	if m.overlay == overlayReauth || m.overlay == overlayDelete {
		var cmd tea.Cmd
		m.prompt.input, cmd = m.prompt.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m *EditorModel) open(snapshot models.SyncSnapshot) {
	m.snapshot = snapshot
	m.overlay = overlayNone
	m.logoutAfterReauth = false
	m.status, m.errMsg = "", ""
	m.area.SetValue(snapshot.WorkingData)
	m.area.Focus()
}

func (m *EditorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.save):
		return m, m.run(opSave, func(ctx context.Context) (models.SyncSnapshot, error) {
			return m.coordinator.SaveNow(ctx)
		})
	case key.Matches(msg, keys.logout):
		return m, m.logout()
	case key.Matches(msg, keys.delete):
		m.prompt = newSecretPrompt("Удаление аккаунта", "Аккаунт "+m.snapshot.Identity+" и все данные будут удалены без возможности восстановления.")
		m.overlay = overlayDelete
		return m, textinput.Blink
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.area.Value())
	case key.Matches(msg, keys.status):
		return m, cmdServerStatus(m.ctx, m.coordinator)
	}

	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)

	if after := m.area.Value(); after != before {
		// local write, applied before the next key so edits stay ordered
		snapshot, err := m.coordinator.Edit(m.ctx, after)
		if err != nil {
			m.area.SetValue(before)
			m.errMsg = humanizeError(err)
			return m, cmd
		}
		m.snapshot = snapshot
		m.errMsg = ""
	}

	return m, cmd
}

func (m *EditorModel) updateSyncFailed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.retry):
		m.overlay = overlayNone
		return m, m.logout()
	case key.Matches(msg, keys.discard):
		m.overlay = overlayNone
		return m, m.run(opDiscard, func(ctx context.Context) (models.SyncSnapshot, error) {
			return m.coordinator.DiscardAndLogout(ctx)
		})
	case key.Matches(msg, keys.reauth):
		m.prompt = newSecretPrompt("Повторный вход", "Введите пароль для "+m.snapshot.Identity+". Локальные изменения сохранятся.")
		m.overlay = overlayReauth
		m.logoutAfterReauth = true
		return m, textinput.Blink
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
		m.area.Focus()
	}

	return m, nil
}

func (m *EditorModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
		m.logoutAfterReauth = false
		m.area.Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		secret := m.prompt.input.Value()
		if secret == "" {
			m.prompt.errMsg = "Пароль обязателен"
			return m, nil
		}
		m.prompt.errMsg = ""

		if m.overlay == overlayDelete {
			return m, m.run(opDelete, func(ctx context.Context) (models.SyncSnapshot, error) {
				return m.coordinator.DeleteAccount(ctx, secret)
			})
		}
		return m, m.run(opReauth, func(ctx context.Context) (models.SyncSnapshot, error) {
			return m.coordinator.Reauthenticate(ctx, secret)
		})
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m *EditorModel) handleResult(msg snapshotMsg) (tea.Model, tea.Cmd) {
	m.sync.running = false
	m.snapshot = msg.snapshot

	if msg.snapshot.State == models.StateUnauthenticated {
		notice := map[operation]string{
			opLogout:  "Данные сохранены, вы вышли из аккаунта",
			opDiscard: "Вы вышли из аккаунта, несохранённые изменения отброшены",
			opDelete:  "Аккаунт удалён",
		}[msg.op]
		if msg.err != nil {
			notice += " (" + humanizeError(msg.err) + ")"
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: SignedOutNotice{Message: notice}}
		}
	}

	if msg.err == nil {
		m.errMsg = ""
		switch msg.op {
		case opSave:
			m.status = "Сохранено на сервере"
		case opReauth:
			m.overlay = overlayNone
			if m.logoutAfterReauth {
				m.logoutAfterReauth = false
				return m, m.logout()
			}
			m.status = "Сессия обновлена"
		}
		m.area.Focus()
		return m, cmdClearStatus()
	}

	switch msg.op {
	case opLogout:
		m.syncFailed = syncFailedModel{
			message:      humanizeError(msg.err),
			tokenExpired: errors.Is(msg.err, service.ErrTokenIsExpiredOrInvalid),
		}
		m.overlay = overlaySyncFailed
	case opReauth, opDelete:
		m.prompt.errMsg = humanizeError(msg.err)
		m.prompt.input.SetValue("")
	default:
		m.errOverlay = errorOverlayModel{message: humanizeError(msg.err)}
		m.overlay = overlayError
	}

	return m, nil
}

func (m *EditorModel) logout() tea.Cmd {
	return m.run(opLogout, func(ctx context.Context) (models.SyncSnapshot, error) {
		return m.coordinator.Logout(ctx)
	})
}

// run starts a coordinator trigger in the background and shows the spinner
// until its snapshotMsg arrives.
func (m *EditorModel) run(op operation, trigger func(ctx context.Context) (models.SyncSnapshot, error)) tea.Cmd {
	m.sync.running = true
	m.busyOp = op
	m.area.Blur()

	ctx := m.ctx
	return tea.Batch(m.sync.spinner.Tick, func() tea.Msg {
		snapshot, err := trigger(ctx)
		return snapshotMsg{op: op, snapshot: snapshot, err: err}
	})
}

func (m *EditorModel) View() string {
	var b strings.Builder

	b.WriteString("Аккаунт: ")
	b.WriteString(fitText(m.snapshot.Identity, 48))
	b.WriteString("\n")

	if m.snapshot.Stale {
		b.WriteString(warnStyle.Render("! Данные загружены из локального кэша и могут быть устаревшими"))
		b.WriteString("\n")
	}
	if m.snapshot.SyncFailed {
		b.WriteString(warnStyle.Render("! Есть изменения, не сохранённые на сервере"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.area.View())
	b.WriteString("\n\n")

	switch {
	case m.sync.running:
		b.WriteString(m.sync.View(m.busyOp))
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	case m.status != "":
		b.WriteString(okStyle.Render(m.status))
	default:
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d символов", len([]rune(m.area.Value())))))
	}

	page := renderPage("РАБОЧИЕ ДАННЫЕ", b.String(), "ctrl+s: сохранить │ ctrl+o: выйти │ ctrl+y: копировать │ ctrl+d: удалить аккаунт │ ctrl+t: статус")

	switch m.overlay {
	case overlaySyncFailed:
		return page + "\n\n" + m.syncFailed.View()
	case overlayReauth, overlayDelete:
		return page + "\n\n" + m.prompt.View()
	case overlayError:
		return page + "\n\n" + m.errOverlay.View()
	}
	return page
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
