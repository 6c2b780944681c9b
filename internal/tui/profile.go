package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const valueColumnWidth = 44

var errNotANumber = errors.New("ожидается целое число")

type profileField struct {
	path    string
	label   string
	numeric bool
}

// profileFields are the rows the user can edit, in display order.
var profileFields = []profileField{
	{path: "email", label: "Email"},
	{path: "name.first", label: "Имя"},
	{path: "name.last", label: "Фамилия"},
	{path: "age", label: "Возраст", numeric: true},
	{path: "company", label: "Компания"},
	{path: "phone", label: "Телефон"},
	{path: "address", label: "Адрес"},
	{path: "eyeColor", label: "Цвет глаз"},
	{path: "picture", label: "Фото"},
}

// ProfileModel shows the current user's record and edits it one field at a
// time. Each row carries the state of its own User.editProfile.<field> ticket,
// so several edits can be in flight at once.
type ProfileModel struct {
	ctx      context.Context
	services *service.ClientServices

	user    models.Record
	idx     int
	editing bool
	input   textinput.Model
	calls   service.Snapshot
	status  string
	errMsg  string

	copy func(string) error
}

func NewProfileModel(ctx context.Context, services *service.ClientServices) *ProfileModel {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = valueColumnWidth

	return &ProfileModel{
		ctx:      ctx,
		services: services,
		input:    input,
		copy:     clipboard.WriteAll,
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	return cmdLoadUser(m.ctx, m.services)
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case userLoadedMsg:
		if msg.ok {
			m.user = msg.user
		}
		return m, nil
	case cacheChangedMsg:
		if len(msg.changes[models.TableUser]) > 0 {
			return m, cmdLoadUser(m.ctx, m.services)
		}
		return m, nil
	case callStateMsg:
		m.calls = msg.snapshot
		return m, nil
	case editDoneMsg:
		if msg.err != nil {
			m.errMsg = fieldLabel(msg.field) + ": " + humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fieldLabel(msg.field) + ": сохранено"
		return m, nil
	case sessionLostMsg:
		m.reset()
		return m, nil
	case logoutDoneMsg:
		m.reset()
		// the local session is gone whatever the server answered
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: sessionLostMsg{}} }
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ProfileModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(profileFields)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.edit):
		m.startEdit()
		return m, textinput.Blink
	case key.Matches(msg, keys.copy):
		m.copySelected()
	case key.Matches(msg, keys.refresh):
		return m, cmdLoadUser(m.ctx, m.services)
	case key.Matches(msg, keys.logout):
		if m.calls.State(service.TicketLogOut).Processing {
			return m, nil
		}
		m.status = "Выход..."
		return m, cmdLogOut(m.ctx, m.services)
	}
	return m, nil
}

func (m *ProfileModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stopEdit()
		return m, nil
	case key.Matches(msg, keys.enter):
		field := profileFields[m.idx]
		value, err := parseFieldValue(field, m.input.Value())
		if err != nil {
			m.errMsg = field.label + ": " + err.Error()
			return m, nil
		}
		m.stopEdit()
		m.errMsg = ""
		m.status = ""
		return m, cmdEditProfile(m.ctx, m.services, models.EditProfileData{Field: field.path, Value: value})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.user == nil {
		b.WriteString("Загрузка профиля...\n")
	} else {
		fmt.Fprintf(&b, "GUID: %s\n", valueOrDash(recordValue(m.user, "guid")))
		fmt.Fprintf(&b, "Баланс: %s\n\n", valueOrDash(recordValue(m.user, "balance")))
	}

	for i, field := range profileFields {
		marker := "  "
		if i == m.idx {
			marker = "> "
		}
		state := m.calls.State(service.EditProfileTicket(field.path))

		value := valueOrDash(recordValue(m.user, field.path))
		if m.editing && i == m.idx {
			value = m.input.View()
		} else {
			value = fitText(value, valueColumnWidth)
		}

		row := fmt.Sprintf("%s%-10s │ %s", marker, field.label, value)
		if i == m.idx && !m.editing {
			row = selectedRow.Render(row)
		}
		b.WriteString(callGlyph(state))
		b.WriteString(" ")
		b.WriteString(row)
		b.WriteString("\n")
	}

	if m.calls.State(service.TicketLogOut).Processing {
		b.WriteString("\nВыход...\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "↑/↓: выбор │ enter: изменить │ c: копировать │ r: обновить │ l: выйти │ v: о программе"
	if m.editing {
		hotKeys = "enter: сохранить │ esc: отмена"
	}
	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProfileModel) capturesKeys() bool {
	return m.editing
}

func (m *ProfileModel) startEdit() {
	m.editing = true
	m.errMsg = ""
	m.status = ""
	m.input.SetValue(recordValue(m.user, profileFields[m.idx].path))
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *ProfileModel) stopEdit() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

func (m *ProfileModel) copySelected() {
	field := profileFields[m.idx]
	value := recordValue(m.user, field.path)
	if value == "" {
		m.status = "Нечего копировать"
		return
	}
	if err := m.copy(value); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return
	}
	m.errMsg = ""
	m.status = field.label + ": скопировано"
}

func (m *ProfileModel) reset() {
	m.stopEdit()
	m.user = nil
	m.idx = 0
	m.status = ""
	m.errMsg = ""
}

func fieldLabel(path string) string {
	for _, f := range profileFields {
		if f.path == path {
			return f.label
		}
	}
	return path
}

// recordValue reads a dotted path such as "name.first" from rec and formats
// it for display. Missing values yield "".
func recordValue(rec models.Record, path string) string {
	var cur any = map[string]any(rec)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			if r, isRecord := cur.(models.Record); isRecord {
				obj = r
			} else {
				return ""
			}
		}
		cur = obj[part]
	}

	switch v := cur.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// parseFieldValue converts the typed text into the value sent for field.
func parseFieldValue(field profileField, text string) (any, error) {
	text = strings.TrimSpace(text)
	if !field.numeric {
		return text, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, errNotANumber
	}
	return n, nil
}

func cmdLoadUser(ctx context.Context, services *service.ClientServices) tea.Cmd {
	return func() tea.Msg {
		user, ok := services.CurrentUser(ctx)
		return userLoadedMsg{user: user, ok: ok}
	}
}

func cmdEditProfile(ctx context.Context, services *service.ClientServices, data models.EditProfileData) tea.Cmd {
	return func() tea.Msg {
		res, err := services.EditProfile(ctx, data, models.ChangeHandlers{}).Wait(ctx)
		if err != nil {
			return editDoneMsg{field: data.Field, err: err}
		}
		return editDoneMsg{field: data.Field, err: res.Err()}
	}
}

func cmdLogOut(ctx context.Context, services *service.ClientServices) tea.Cmd {
	return func() tea.Msg {
		res, err := services.LogOut(ctx, struct{}{}, models.ChangeHandlers{}).Wait(ctx)
		if err != nil {
			return logoutDoneMsg{err: err}
		}
		return logoutDoneMsg{err: res.Err()}
	}
}
