// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and starts the tracked login call on submit. The
// progress shown comes from the Session.login ticket, so a login started
// elsewhere is reflected too.
type LoginModel struct {
	ctx      context.Context
	services *service.ClientServices

	inputs []textinput.Model
	focus  int
	state  service.CallState
	errMsg string
	notice string
}

// NewLoginModel creates a [LoginModel] with the email input focused and the
// password input masked.
func NewLoginModel(ctx context.Context, services *service.ClientServices) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:      ctx,
		services: services,
		inputs:   []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - callStateMsg   tracks the Session.login ticket.
//   - loginDoneMsg   opens the profile on success, shows the error otherwise.
//   - sessionLostMsg explains why the user landed here.
//   - tab, shift+tab move the focus; enter submits.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callStateMsg:
		m.state = msg.snapshot.State(service.TicketLogin)
		return m, nil
	case loginDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
	case sessionLostMsg:
		m.notice = "Сессия завершена"
		if msg.err != nil {
			m.notice = humanizeError(msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form with a submission
// indicator and an optional error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	switch {
	case m.state.Processing:
		b.WriteString("\n[Вход...]\n")
	case m.state.Success:
		b.WriteString("\n[Вход ✓]\n")
	default:
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: подтвердить")
}

// submit validates the form and returns the login command, or nil when the
// form is incomplete or a login is already running.
func (m *LoginModel) submit() tea.Cmd {
	if m.state.Processing {
		return nil
	}

	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if email == "" || password == "" {
		m.errMsg = "Email и пароль обязательны"
		return nil
	}

	m.errMsg = ""
	m.notice = ""
	m.state = service.CallState{Processing: true}
	return cmdLogin(m.ctx, m.services, models.LoginData{Email: email, Password: password})
}

// capturesKeys reports whether plain letter keys go to an input.
func (m *LoginModel) capturesKeys() bool {
	return true
}

func (m *LoginModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.errMsg = ""
	m.notice = ""
	m.setFocus(0)
}

func (m *LoginModel) focusNext() {
	m.setFocus((m.focus + 1) % len(m.inputs))
}

func (m *LoginModel) focusPrev() {
	m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func cmdLogin(ctx context.Context, services *service.ClientServices, data models.LoginData) tea.Cmd {
	return func() tea.Msg {
		res, err := services.Login(ctx, data, models.ChangeHandlers{}).Wait(ctx)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{err: res.Err()}
	}
}
