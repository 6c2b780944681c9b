package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/mock"
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	adapter  *mock.MockServerAdapter
	sessions *mock.MockLocalSessionRepository
	services *service.ClientServices
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	ad := mock.NewMockServerAdapter(ctrl)
	ad.EXPECT().AddHandler(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	ad.EXPECT().CreateHandler(gomock.Any()).DoAndReturn(createHandler).AnyTimes()

	sessions := mock.NewMockLocalSessionRepository(ctrl)
	storages := &store.ClientStorages{LocalSessions: sessions, Cache: store.NewLocalCache(logger.Nop())}

	return testDeps{
		adapter:  ad,
		sessions: sessions,
		services: service.NewClientServices(storages, ad, config.ClientCalls{ResetDelay: time.Millisecond}, logger.Nop()),
	}
}

// createHandler mirrors the adapter's success/error/finally routing.
func createHandler(cb models.ResponseCallbacks) models.ResponseHandler {
	return func(resp models.Response) {
		if resp.Success {
			if cb.Success != nil {
				cb.Success(resp)
			}
		} else if cb.Error != nil {
			cb.Error(resp)
		}
		if cb.Finally != nil {
			cb.Finally(resp)
		}
	}
}

// answer expects one API call and answers it with resp before returning.
func answer(ad *mock.MockServerAdapter, resp models.Response) *adapter.CallParams {
	sent := &adapter.CallParams{}
	ad.EXPECT().API(gomock.Any()).DoAndReturn(func(p adapter.CallParams) (int64, error) {
		*sent = p
		resp.API = p.API
		resp.MessageID = 1
		p.Handler(resp)
		return 1, nil
	})
	return sent
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// stubPage records what it receives.
type stubPage struct {
	name     string
	received []tea.Msg
	capture  bool
}

func (p *stubPage) Init() tea.Cmd { return nil }

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

func (p *stubPage) View() string { return "page:" + p.name }

func (p *stubPage) capturesKeys() bool { return p.capture }
