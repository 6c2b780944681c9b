package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// welcomeModel is shown while the connection opens and the remembered session
// is recovered. RootModel leaves it once the outcome is known.
type welcomeModel struct {
	ctx  context.Context
	info adapter.InfoAdapter

	online bool
	err    error
	server *serverInfoMsg
}

func newWelcomeModel(ctx context.Context, info adapter.InfoAdapter) *welcomeModel {
	return &welcomeModel{ctx: ctx, info: info}
}

func (m *welcomeModel) Init() tea.Cmd {
	return cmdServerInfo(m.ctx, m.info)
}

func (m *welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectionMsg:
		m.online = msg.open
		m.err = msg.err
	case serverInfoMsg:
		m.server = &msg
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *welcomeModel) View() string {
	var b strings.Builder

	switch {
	case m.online:
		b.WriteString("Восстановление сессии...\n")
	case m.err != nil:
		b.WriteString("Нет соединения: ")
		b.WriteString(humanizeError(m.err))
		b.WriteString("\nПовторное подключение...\n")
	default:
		b.WriteString("Подключение к серверу...\n")
	}

	if m.server != nil && m.server.err == nil {
		b.WriteString("\nВерсия сервера: ")
		b.WriteString(valueOrNA(m.server.version))
	}

	return renderPage("PROFILE HUB", strings.TrimRight(b.String(), "\n"), "v: о программе │ q: выход")
}

// cmdServerInfo reads the server version and health over plain HTTP.
func cmdServerInfo(ctx context.Context, info adapter.InfoAdapter) tea.Cmd {
	if info == nil {
		return nil
	}
	return func() tea.Msg {
		version, err := info.GetServerVersion(ctx)
		if err != nil {
			return serverInfoMsg{err: err}
		}
		health, err := info.GetHealth(ctx)
		return serverInfoMsg{version: version, health: health, err: err}
	}
}
