package tui

import (
	"strings"

	"github.com/MKhiriev/go-profile-hub/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names.
const (
	pageWelcome = "welcome"
	pageLogin   = "login"
	pageProfile = "profile"
)

// keyCapturer is implemented by pages that sometimes need plain letter keys
// for text input.
type keyCapturer interface {
	capturesKeys() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) follows the session: recovered goes to the profile, lost to the login
// 4) hands tracker, cache and connection updates to every page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string
	start   tea.Cmd

	buildInfo     models.AppBuildInfo
	server        serverInfoMsg
	showBuildInfo bool

	online    bool
	notice    string
	noticeErr bool
}

// NewRootModel registers all pages and opens startPage. start runs once
// alongside the first page's Init.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, start tea.Cmd) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		start:     start,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page := r.pages[r.current]
	if page == nil {
		return r.start
	}
	return tea.Batch(r.start, page.Init())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if key.Matches(msg, keys.buildInfo) && !r.pageCapturesKeys() {
			r.showBuildInfo = true
			return r, nil
		}

	case NavigateTo:
		return r.navigate(msg)

	case sessionRecoveredMsg:
		if r.current == pageProfile {
			return r, nil
		}
		return r.navigate(NavigateTo{Page: pageProfile})

	case noSessionMsg:
		if r.current != pageWelcome {
			return r, nil
		}
		return r.navigate(NavigateTo{Page: pageLogin})

	case sessionLostMsg:
		if page, ok := r.pages[pageProfile]; ok {
			r.pages[pageProfile], _ = page.Update(msg)
		}
		return r.navigate(NavigateTo{Page: pageLogin, Payload: msg})

	case serverMessageMsg:
		r.notice = msg.resp.Description
		r.noticeErr = msg.resp.Category == models.CategoryError
		return r, nil

	case connectionMsg:
		r.online = msg.open
		return r.broadcast(msg)

	case serverInfoMsg:
		r.server = msg
		return r.broadcast(msg)

	case callStateMsg, cacheChangedMsg:
		return r.broadcast(msg)
	}

	page := r.pages[r.current]
	if page == nil {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.server)
	}

	var b strings.Builder
	if page := r.pages[r.current]; page != nil {
		b.WriteString(page.View())
	} else {
		b.WriteString(renderPage("TUI", "", ""))
	}

	b.WriteString("\n\n  ")
	if r.online {
		b.WriteString(successStyle.Render("● онлайн"))
	} else {
		b.WriteString(helpStyle.Render("○ нет соединения"))
	}
	if r.notice != "" {
		b.WriteString("  ")
		if r.noticeErr {
			b.WriteString(errorStyle.Render(r.notice))
		} else {
			b.WriteString(r.notice)
		}
	}
	return b.String()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, next.Init()
}

// broadcast hands msg to every page, not only the active one, so pages
// opened later show current state.
func (r RootModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		if name == r.current {
			cmds = append(cmds, cmd)
		}
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) pageCapturesKeys() bool {
	c, ok := r.pages[r.current].(keyCapturer)
	return ok && c.capturesKeys()
}
