package tui

import (
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page instead of its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// Messages fed by the client services from outside the event loop. RootModel
// hands them to every page.
type (
	callStateMsg struct {
		snapshot service.Snapshot
	}

	cacheChangedMsg struct {
		changes models.Changes
	}

	connectionMsg struct {
		open bool
		err  error
	}

	serverMessageMsg struct {
		resp models.Response
	}
)

// Session outcomes reported by the connection bridge.
type (
	sessionRecoveredMsg struct{}

	noSessionMsg struct{}

	sessionLostMsg struct {
		err error
	}
)

// Results of tracked calls started by the pages.
type (
	loginDoneMsg struct {
		err error
	}

	logoutDoneMsg struct {
		err error
	}

	editDoneMsg struct {
		field string
		err   error
	}
)

type userLoadedMsg struct {
	user models.Record
	ok   bool
}

type serverInfoMsg struct {
	version string
	health  models.HealthStatus
	err     error
}
