package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/models"
)

type httpInfoAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPInfoAdapter constructs an [InfoAdapter] for the server HTTP API at
// cfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPInfoAdapter(cfg config.ClientAdapter, log *logger.Logger) (InfoAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpInfoAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetServerVersion implements [InfoAdapter]. It reads GET /api/version, which
// answers with the plain version string.
func (h *httpInfoAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// GetHealth implements [InfoAdapter]. A 503 from GET /api/health is mapped to
// [ErrServiceUnavailable].
func (h *httpInfoAdapter) GetHealth(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&status).
		Get("/api/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}
