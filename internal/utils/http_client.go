package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const clientUserAgent = "profile-hub-client"

// HTTPClient embeds *resty.Client so callers use the resty request API
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. A zero
// timeout leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", clientUserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
