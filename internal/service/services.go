package service

import (
	"fmt"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/store"
)

// Services groups the server-side services used by the handlers.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		ProfileService: NewProfileService(storages.UserRepository, logger),
		AppInfoService: appInfo,
	}, nil
}
