package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type overlay int

const (
	overlayNone overlay = iota
	overlaySyncFailed
	overlayReauth
	overlayDelete
	overlayError
)

// syncFailedModel is shown when logout could not push the working data.
// The cached data stays intact until the user picks an option.
type syncFailedModel struct {
	message      string
	tokenExpired bool
}

func (m syncFailedModel) View() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Не удалось сохранить данные на сервере"))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\nЛокальные изменения сохранены.\n\n")
	if m.tokenExpired {
		b.WriteString("a войти заново    ")
	}
	b.WriteString("r повторить    d выйти без сохранения    esc остаться")
	return overlayBoxStyle.Render(b.String())
}

// secretPromptModel asks for the account secret, used by reauthentication
// and account deletion.
type secretPromptModel struct {
	title  string
	prompt string
	input  textinput.Model
	errMsg string
}

func newSecretPrompt(title, prompt string) secretPromptModel {
	in := newSecretInput("password")
	in.Focus()
	return secretPromptModel{title: title, prompt: prompt, input: in}
}

func (m secretPromptModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.prompt)
	b.WriteString("\n\nПароль: [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\nenter подтвердить    esc отмена")
	return overlayBoxStyle.Render(b.String())
}
