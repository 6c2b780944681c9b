// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/internal/store"
)

// humanizeError turns a call or transport error into a message for the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Неверный email или пароль"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Требуется вход"
	case errors.Is(err, service.ErrFieldNotEditable):
		return "Поле нельзя изменить"
	case errors.Is(err, service.ErrInvalidFieldValue):
		return "Недопустимое значение"
	case errors.Is(err, store.ErrEmailAlreadyTaken):
		return "Email уже занят"
	case errors.Is(err, store.ErrUserNotFound):
		return "Пользователь не найден"
	case errors.Is(err, service.ErrRateLimited):
		return "Слишком много запросов, повторите позже"
	case errors.Is(err, service.ErrRequestTimedOut):
		return "Сервер не ответил вовремя"
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
