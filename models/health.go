package models

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Connections int    `json:"connections"`
}
