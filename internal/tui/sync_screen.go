package tui

import "github.com/charmbracelet/bubbles/spinner"

type syncModel struct {
	spinner spinner.Model
	running bool
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s}
}

func (m syncModel) View(op operation) string {
	label := map[operation]string{
		opSave:    " Сохранение на сервере...",
		opLogout:  " Синхронизация и выход...",
		opDiscard: " Выход...",
		opReauth:  " Вход...",
		opDelete:  " Удаление аккаунта...",
	}[op]
	return m.spinner.View() + label
}
