package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			UsersFile string `json:"users_file"`
		} `json:"files,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		AllowedOrigins []string `json:"allowed_origins"`
		ReadLimit      int64    `json:"read_limit"`
		MessageRate    float64  `json:"message_rate"`
		MessageBurst   int      `json:"message_burst"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		WSURL            string   `json:"ws_url"`
		HTTPAddress      string   `json:"http_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		SendRetryDelay   Duration `json:"send_retry_delay"`
		ReconnectDelay   Duration `json:"reconnect_delay"`
		DisableReconnect bool     `json:"disable_reconnect"`
	} `json:"adapter,omitempty"`

	Calls struct {
		ResetDelay Duration `json:"reset_delay"`
		StartDelay Duration `json:"start_delay"`
		Timeout    Duration `json:"timeout"`
	} `json:"calls,omitempty"`

	Workers struct {
		HeartbeatInterval Duration `json:"heartbeat_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{UsersFile: jsonCfg.Storage.Files.UsersFile},
			Local: Local{DSN: jsonCfg.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			ReadLimit:      jsonCfg.Server.ReadLimit,
			MessageRate:    jsonCfg.Server.MessageRate,
			MessageBurst:   jsonCfg.Server.MessageBurst,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			WSURL:            jsonCfg.Adapter.WSURL,
			HTTPAddress:      jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			SendRetryDelay:   time.Duration(jsonCfg.Adapter.SendRetryDelay),
			ReconnectDelay:   time.Duration(jsonCfg.Adapter.ReconnectDelay),
			DisableReconnect: jsonCfg.Adapter.DisableReconnect,
		},
		Calls: Calls{
			ResetDelay: time.Duration(jsonCfg.Calls.ResetDelay),
			StartDelay: time.Duration(jsonCfg.Calls.StartDelay),
			Timeout:    time.Duration(jsonCfg.Calls.Timeout),
		},
		Workers: Workers{
			HeartbeatInterval: time.Duration(jsonCfg.Workers.HeartbeatInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
