// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-profile-hub/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, server serverInfoMsg) string {
	var b strings.Builder

	b.WriteString("Название приложения: ProfileHub\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")

	b.WriteString("Версия сервера: ")
	if server.err != nil {
		b.WriteString(humanizeError(server.err))
	} else {
		b.WriteString(valueOrNA(server.version))
		b.WriteString("\n")
		b.WriteString("Статус сервера: ")
		b.WriteString(valueOrNA(server.health.Status))
		b.WriteString("\n")
		b.WriteString("Подключений: ")
		b.WriteString(strconv.Itoa(server.health.Connections))
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
