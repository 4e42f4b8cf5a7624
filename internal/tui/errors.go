// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
)

var errorTexts = []struct {
	target error
	text   string
}{
	{service.ErrWrongSecret, "Неверный логин или пароль"},
	{service.ErrTokenIsExpiredOrInvalid, "Сессия истекла, требуется повторный вход"},
	{service.ErrAccessDenied, "Доступ запрещён"},
	{service.ErrInvalidDataProvided, "Некорректные данные"},
	{service.ErrRateLimited, "Слишком много попыток, повторите позже"},
	{service.ErrOperationInProgress, "Дождитесь завершения текущей операции"},
	{store.ErrIdentityAlreadyExists, "Пользователь уже существует"},
	{store.ErrAccountNotFound, "Аккаунт не найден"},
}

// humanizeError turns a coordinator error into a message for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, e := range errorTexts {
		if errors.Is(err, e.target) {
			return e.text
		}
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, service.ErrServerUnavailable) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
