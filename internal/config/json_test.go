package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllGroups(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"token_sign_key": "k", "token_issuer": "iss", "token_duration": "2h", "version": "0.9.0"},
		"storage": {"db": {"dsn": "postgres://x"}, "files": {"users_file": "users.json"}, "local": {"dsn": "local.db"}},
		"server": {"http_address": "0.0.0.0:3000", "allowed_origins": ["a.com"], "read_limit": 2048, "message_rate": 3, "message_burst": 6, "request_timeout": "4s"},
		"adapter": {"ws_url": "ws://h/ws", "http_address": "http://h", "request_timeout": "7s", "send_retry_delay": "1s", "reconnect_delay": "10s", "disable_reconnect": true},
		"calls": {"reset_delay": "1s", "start_delay": "500ms", "timeout": "30s"},
		"workers": {"heartbeat_interval": "45s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "postgres://x", cfg.Storage.DB.DSN)
	assert.Equal(t, "users.json", cfg.Storage.Files.UsersFile)
	assert.Equal(t, "local.db", cfg.Storage.Local.DSN)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"a.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(2048), cfg.Server.ReadLimit)
	assert.Equal(t, 6, cfg.Server.MessageBurst)
	assert.Equal(t, 4*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "ws://h/ws", cfg.Adapter.WSURL)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.DisableReconnect)
	assert.Equal(t, 500*time.Millisecond, cfg.Calls.StartDelay)
	assert.Equal(t, 30*time.Second, cfg.Calls.Timeout)
	assert.Equal(t, 45*time.Second, cfg.Workers.HeartbeatInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempFile(t, `{"app": `)
	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(b))
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
