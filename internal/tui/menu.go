package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModel is the start page of a signed-out client.
type MenuModel struct {
	ctx         context.Context
	coordinator service.SyncCoordinator

	items   []string
	idx     int
	status  string
	errMsg  string
	probing bool
}

func NewMenuModel(ctx context.Context, coordinator service.SyncCoordinator) *MenuModel {
	return &MenuModel{
		ctx:         ctx,
		coordinator: coordinator,
		items:       []string{"Войти", "Зарегистрироваться", "Проверить сервер"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		m.errMsg = ""
		m.status = "Пользователь " + msg.Identity + " успешно зарегистрирован"
		return m, nil
	case SignedOutNotice:
		m.errMsg = ""
		m.status = msg.Message
		return m, nil
	case serverStatusMsg:
		m.probing = false
		m.status, m.errMsg = "", ""
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.status = "Сервер: " + msg.message
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *MenuModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.status, keys.statusKey):
		return m, m.checkServer()
	case key.Matches(msg, keys.enter):
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
		default:
			return m, m.checkServer()
		}
	}

	return m, nil
}

func (m *MenuModel) checkServer() tea.Cmd {
	if m.probing {
		return nil
	}
	m.probing = true
	return cmdServerStatus(m.ctx, m.coordinator)
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // "<marker> <id>"

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	switch {
	case m.probing:
		b.WriteString("Проверка сервера...\n\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	case m.status != "":
		b.WriteString(okStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ t: статус сервера │ v: версия")
}

func cmdServerStatus(ctx context.Context, coordinator service.SyncCoordinator) tea.Cmd {
	return func() tea.Msg {
		message, err := coordinator.Status(ctx)
		return serverStatusMsg{message: message, err: err}
	}
}
