package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
	cache   *store.LocalCache
}

func NewClientProfileService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, cache: storages.Cache}
}

func (p *clientProfileService) EditProfile(ctx context.Context, params models.EditProfileData, h models.ChangeHandlers) error {
	_, err := p.adapter.API(adapter.CallParams{
		API:     models.APIEditProfile,
		Data:    params,
		Handler: p.adapter.CreateHandler(p.cache.WrapHandlers(h)),
	})
	if err != nil {
		return fmt.Errorf("error sending edit profile request: %w", err)
	}
	return nil
}
