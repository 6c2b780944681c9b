package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f users JSON file path
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-origins comma separated allowed WebSocket origins
//	-message-rate per-connection inbound messages per second
//	-message-burst per-connection burst size
//	-ws-url client WebSocket endpoint
//	-server-url client HTTP API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-reconnect-delay delay before reconnecting after a drop
//	-no-reconnect disable automatic reconnection
//	-reset-delay call state reset delay
//	-call-timeout forced error after no response
//	-heartbeat client ping interval
//	-local-dsn client SQLite DSN
//	-log-file client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-profile-hub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var usersFile, databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var origins string
	var messageRate float64
	var messageBurst int
	var wsURL, serverURL string
	var requestTimeout, reconnectDelay time.Duration
	var noReconnect bool
	var resetDelay, callTimeout, heartbeat time.Duration
	var localDSN, logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&usersFile, "f", "", "Users JSON file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&origins, "origins", "", "Allowed WebSocket origin patterns, comma separated")
	fs.Float64Var(&messageRate, "message-rate", 0, "Inbound messages per second per connection")
	fs.IntVar(&messageBurst, "message-burst", 0, "Inbound message burst per connection")
	fs.StringVar(&wsURL, "ws-url", "", "WebSocket endpoint (client)")
	fs.StringVar(&serverURL, "server-url", "", "Server HTTP API base URL (client)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&reconnectDelay, "reconnect-delay", 0, "Reconnect delay after a dropped connection")
	fs.BoolVar(&noReconnect, "no-reconnect", false, "Disable automatic reconnection")
	fs.DurationVar(&resetDelay, "reset-delay", 0, "Call state reset delay")
	fs.DurationVar(&callTimeout, "call-timeout", 0, "Force an error when no response arrives in time")
	fs.DurationVar(&heartbeat, "heartbeat", 0, "Client ping interval")
	fs.StringVar(&localDSN, "local-dsn", "", "Client SQLite DSN")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{UsersFile: usersFile},
			Local: Local{DSN: localDSN, LogFile: logFile},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			AllowedOrigins: splitList(origins),
			MessageRate:    messageRate,
			MessageBurst:   messageBurst,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			WSURL:            wsURL,
			HTTPAddress:      serverURL,
			RequestTimeout:   requestTimeout,
			ReconnectDelay:   reconnectDelay,
			DisableReconnect: noReconnect,
		},
		Calls: Calls{
			ResetDelay: resetDelay,
			Timeout:    callTimeout,
		},
		Workers:      Workers{HeartbeatInterval: heartbeat},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
