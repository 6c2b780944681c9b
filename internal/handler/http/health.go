package http

import (
	"net/http"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/models"
)

const statusOK = "ok"

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:      statusOK,
		Version:     h.services.AppInfoService.GetAppVersion(r.Context()),
		Connections: h.ws.Connections(),
	}

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health status")
	}
}
