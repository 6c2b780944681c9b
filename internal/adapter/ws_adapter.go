package adapter

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
)

type wsServerAdapter struct {
	transport *WSTransport
	registry  *Registry

	nextID atomic.Int64

	showMu      sync.RWMutex
	showMessage func(models.Response)

	logger *logger.Logger
}

// NewWSServerAdapter wires a [WSTransport] to a fresh [Registry] and returns
// the [ServerAdapter] over them. The connection is not opened until Connect
// or the first request.
func NewWSServerAdapter(cfg config.ClientAdapter, log *logger.Logger) ServerAdapter {
	registry := NewRegistry()
	a := &wsServerAdapter{
		registry: registry,
		logger:   log,
	}
	a.transport = NewWSTransport(cfg, func(resp models.Response) {
		if n := registry.Dispatch(resp); n == 0 {
			log.Debug().Str("api", resp.API).Int64("message_id", resp.MessageID).Msg("no handler for server message")
		}
	}, log)
	a.transport.SetOnError(func(err error) {
		log.Warn().Err(err).Msg("websocket error")
	})

	return a
}

func (a *wsServerAdapter) API(params CallParams) (int64, error) {
	id := a.nextID.Add(1)
	log := a.logger.WithAPI(params.API, id)

	data := params.Data
	if data == nil {
		data = struct{}{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		log.Err(err).Msg("error encoding request data")
		return id, fmt.Errorf("encode %s request: %w", params.API, err)
	}

	if params.Handler != nil {
		a.registry.AddOneShotHandler(params.API, MessageKey(id), params.Handler)
	}

	req := models.Request{API: params.API, MessageID: id, Data: raw}
	if err = a.transport.Send(req); err != nil {
		log.Warn().Err(err).Msg("request dropped")
		return id, err
	}

	log.Debug().Msg("request sent")
	return id, nil
}

func (a *wsServerAdapter) Ping() (int64, error) {
	return a.API(CallParams{API: models.APIPing})
}

func (a *wsServerAdapter) CreateHandler(callbacks models.ResponseCallbacks) models.ResponseHandler {
	return func(resp models.Response) {
		if resp.Description != "" {
			a.showMu.RLock()
			show := a.showMessage
			a.showMu.RUnlock()
			if show != nil {
				show(resp)
			}
		}

		if resp.Success {
			if callbacks.Success != nil {
				callbacks.Success(resp)
			}
		} else if callbacks.Error != nil {
			callbacks.Error(resp)
		}

		if callbacks.Finally != nil {
			callbacks.Finally(resp)
		}
	}
}

func (a *wsServerAdapter) SetShowMessage(fn func(models.Response)) {
	a.showMu.Lock()
	a.showMessage = fn
	a.showMu.Unlock()
}

func (a *wsServerAdapter) AddHandler(api, key string, handler models.ResponseHandler) {
	a.registry.AddHandler(api, key, handler)
}

func (a *wsServerAdapter) RemoveHandler(api, key string) {
	a.registry.RemoveHandler(api, key)
}

func (a *wsServerAdapter) Connect()        { a.transport.Connect() }
func (a *wsServerAdapter) Disconnect()     { a.transport.Disconnect() }
func (a *wsServerAdapter) Connected() bool { return a.transport.Connected() }
func (a *wsServerAdapter) Close()          { a.transport.Shutdown() }

func (a *wsServerAdapter) SetOnOpen(fn func()) {
	a.transport.SetOnOpen(fn)
}

func (a *wsServerAdapter) SetOnClose(fn func(err error)) {
	a.transport.SetOnClose(fn)
}
