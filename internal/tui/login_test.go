package tui

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-profile-hub/internal/app"
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const loginPayload = `{
	"USER": [{"id": "u1", "id_entity": 1, "guid": "guid-alice", "email": "alice@example.com"}],
	"SESSION": [{"id": "tok", "token": "tok", "userGuid": "guid-alice", "id_entity": 2}]
}`

func fillLogin(m *LoginModel, email, password string) {
	m.inputs[0].SetValue(email)
	m.inputs[1].SetValue(password)
}

func TestLoginModel_RequiresBothFields(t *testing.T) {
	deps := newTestDeps(t)
	m := NewLoginModel(context.Background(), deps.services)
	fillLogin(m, "alice@example.com", "")

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Email и пароль обязательны", m.errMsg)
	assert.Contains(t, m.View(), "Email и пароль обязательны")
}

func TestLoginModel_TabMovesFocus(t *testing.T) {
	deps := newTestDeps(t)
	m := NewLoginModel(context.Background(), deps.services)

	m.Update(keyPress("tab"))
	assert.Equal(t, 1, m.focus)
	m.Update(keyPress("tab"))
	assert.Equal(t, 0, m.focus)
	m.Update(keyPress("up"))
	assert.Equal(t, 1, m.focus)
}

func TestLoginModel_Success(t *testing.T) {
	deps := newTestDeps(t)
	sent := answer(deps.adapter, models.Response{Success: true, Data: json.RawMessage(loginPayload)})
	deps.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	m := NewLoginModel(context.Background(), deps.services)
	fillLogin(m, " alice@example.com ", "secret")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.state.Processing)

	done := cmd()
	assert.Equal(t, loginDoneMsg{}, done)
	assert.Equal(t, models.APILogin, sent.API)
	assert.Equal(t, models.LoginData{Email: "alice@example.com", Password: "secret"}, sent.Data)

	_, cmd = m.Update(done)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageProfile}, cmd())
	assert.Empty(t, m.inputs[0].Value())
	assert.Empty(t, m.inputs[1].Value())
}

func TestLoginModel_WrongPassword(t *testing.T) {
	deps := newTestDeps(t)
	answer(deps.adapter, models.Response{Success: false, Category: models.CategoryError, Error: app.MsgInvalidCredentials})

	m := NewLoginModel(context.Background(), deps.services)
	fillLogin(m, "alice@example.com", "nope")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	done, ok := cmd().(loginDoneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, done.err, service.ErrWrongPassword)

	_, cmd = m.Update(done)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Неверный email или пароль")
}

func TestLoginModel_IgnoresSubmitWhileProcessing(t *testing.T) {
	deps := newTestDeps(t)
	m := NewLoginModel(context.Background(), deps.services)
	fillLogin(m, "alice@example.com", "secret")

	m.Update(callStateMsg{snapshot: service.Snapshot{service.TicketLogin: {Processing: true}}})
	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "[Вход...]")
}

func TestLoginModel_SessionLostNotice(t *testing.T) {
	deps := newTestDeps(t)
	m := NewLoginModel(context.Background(), deps.services)

	m.Update(sessionLostMsg{err: service.ErrTokenIsExpiredOrInvalid})
	assert.Contains(t, m.View(), "Сессия истекла, войдите снова")

	m.Update(sessionLostMsg{})
	assert.Contains(t, m.View(), "Сессия завершена")
}
