package store

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistrar struct {
	handlers map[string]map[string]models.ResponseHandler
}

func (f *fakeRegistrar) AddHandler(api, key string, handler models.ResponseHandler) {
	if f.handlers == nil {
		f.handlers = make(map[string]map[string]models.ResponseHandler)
	}
	if f.handlers[api] == nil {
		f.handlers[api] = make(map[string]models.ResponseHandler)
	}
	f.handlers[api][key] = handler
}

func TestLocalCache_Classify_InsertThenUpdate(t *testing.T) {
	c := NewLocalCache(logger.Nop())

	change, ok := c.Classify(models.Record{"id": "u1", "id_entity": 1, "email": "a@x"})
	require.True(t, ok)
	assert.Equal(t, models.ChangeInsert, change.Type)

	change, ok = c.Classify(models.Record{"id": "u1", "id_entity": 1, "email": "b@x"})
	require.True(t, ok)
	assert.Equal(t, models.ChangeUpdate, change.Type)

	rec, ok := c.Get(models.TableUser, "u1")
	require.True(t, ok)
	assert.Equal(t, "b@x", rec["email"])
}

func TestLocalCache_Classify_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		record models.Record
	}{
		{"nil record", nil},
		{"missing id", models.Record{"id_entity": 1}},
		{"null id", models.Record{"id": nil, "id_entity": 1}},
		{"missing entity", models.Record{"id": "x"}},
		{"unknown entity", models.Record{"id": "x", "id_entity": 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLocalCache(logger.Nop())
			_, ok := c.Classify(tt.record)
			assert.False(t, ok)
			assert.Empty(t, c.Table(models.TableUser))
			assert.Empty(t, c.Table(models.TableSession))
		})
	}
}

func TestLocalCache_Classify_NumericIDIsStringified(t *testing.T) {
	c := NewLocalCache(logger.Nop())

	_, ok := c.Classify(models.Record{"id": float64(42), "id_entity": float64(2)})
	require.True(t, ok)

	_, ok = c.Get(models.TableSession, "42")
	assert.True(t, ok)
}

func TestLocalCache_ClassifyBatch(t *testing.T) {
	c := NewLocalCache(logger.Nop())

	var data models.EntityData
	require.NoError(t, json.Unmarshal([]byte(`{
		"USER": [{"id": "u1", "id_entity": 1}, {"id": "u2", "id_entity": 1}, "junk", {"id_entity": 1}],
		"SESSION": [{"id": "t1", "id_entity": 2}],
		"meta": {"count": 3},
		"empty": []
	}`), &data))

	changes := c.ClassifyBatch(data)

	require.Len(t, changes["USER"], 2)
	assert.Equal(t, models.ChangeInsert, changes["USER"][0].Type)
	require.Len(t, changes["SESSION"], 1)
	assert.NotContains(t, changes, "meta")
	assert.Contains(t, changes, "empty")
	assert.Empty(t, changes["empty"])

	assert.Len(t, c.Table(models.TableUser), 2)
	assert.Len(t, c.Table(models.TableSession), 1)
}

func TestLocalCache_ClassifyBatch_Nil(t *testing.T) {
	c := NewLocalCache(logger.Nop())
	assert.Empty(t, c.ClassifyBatch(nil))
}

func TestLocalCache_Table_ReturnsCopy(t *testing.T) {
	c := NewLocalCache(logger.Nop())
	c.Classify(models.Record{"id": "u1", "id_entity": 1})

	snapshot := c.Table(models.TableUser)
	delete(snapshot, "u1")

	_, ok := c.Get(models.TableUser, "u1")
	assert.True(t, ok)
}

func TestLocalCache_StoredRecordIsDetachedFromInput(t *testing.T) {
	c := NewLocalCache(logger.Nop())
	rec := models.Record{"id": "u1", "id_entity": 1, "email": "a@x"}
	c.Classify(rec)

	rec["email"] = "mutated"

	stored, _ := c.Get(models.TableUser, "u1")
	assert.Equal(t, "a@x", stored["email"])
}

func TestLocalCache_WrapHandlers_ClassifiesBeforeCallback(t *testing.T) {
	c := NewLocalCache(logger.Nop())

	var (
		gotChanges models.Changes
		cachedSeen bool
		finallyRan bool
	)
	callbacks := c.WrapHandlers(models.ChangeHandlers{
		Success: func(resp models.Response, changes models.Changes) {
			gotChanges = changes
			_, cachedSeen = c.Get(models.TableUser, "u1")
		},
		Finally: func(models.Response) { finallyRan = true },
	})

	resp := models.Response{
		API:     models.APILogin,
		Success: true,
		Data:    json.RawMessage(`{"USER":[{"id":"u1","id_entity":1}]}`),
	}
	callbacks.Success(resp)
	callbacks.Finally(resp)

	assert.True(t, cachedSeen)
	require.Len(t, gotChanges["USER"], 1)
	assert.Equal(t, models.ChangeInsert, gotChanges["USER"][0].Type)
	assert.True(t, finallyRan)
}

func TestLocalCache_WrapHandlers_ErrorPathAlsoClassifies(t *testing.T) {
	c := NewLocalCache(logger.Nop())

	var called bool
	callbacks := c.WrapHandlers(models.ChangeHandlers{
		Error: func(resp models.Response, changes models.Changes) {
			called = true
			assert.Len(t, changes["SESSION"], 1)
		},
	})

	callbacks.Error(models.Response{Data: json.RawMessage(`{"SESSION":[{"id":"t1","id_entity":2}]}`)})

	assert.True(t, called)
	_, ok := c.Get(models.TableSession, "t1")
	assert.True(t, ok)
}

func TestLocalCache_WrapHandlers_NilCallbacks(t *testing.T) {
	c := NewLocalCache(logger.Nop())
	callbacks := c.WrapHandlers(models.ChangeHandlers{})

	assert.NotPanics(t, func() {
		callbacks.Success(models.Response{})
		callbacks.Error(models.Response{})
	})
	assert.Nil(t, callbacks.Finally)
}

func TestLocalCache_RegisterEntityHandlers(t *testing.T) {
	c := NewLocalCache(logger.Nop())
	reg := &fakeRegistrar{}

	c.RegisterEntityHandlers(reg)

	require.Contains(t, reg.handlers, models.TableUser)
	require.Contains(t, reg.handlers, models.TableSession)
	push := reg.handlers[models.TableUser][EntityHandlerKey]
	require.NotNil(t, push)

	push(models.Response{API: models.TableUser, Data: json.RawMessage(`{"USER":[{"id":"u9","id_entity":1,"age":40}]}`)})

	rec, ok := c.Get(models.TableUser, "u9")
	require.True(t, ok)
	assert.Equal(t, float64(40), rec["age"])
}

func TestLocalCache_Subscribe(t *testing.T) {
	c := NewLocalCache(logger.Nop())

	var (
		mu       sync.Mutex
		received []models.Changes
	)
	unsubscribe := c.Subscribe(func(ch models.Changes) {
		mu.Lock()
		received = append(received, ch)
		mu.Unlock()
	})

	c.Classify(models.Record{"id": "u1", "id_entity": 1})
	c.ClassifyBatch(models.EntityData{"USER": []any{}})
	c.Classify(models.Record{"id": "bad"})

	unsubscribe()
	c.Classify(models.Record{"id": "u2", "id_entity": 1})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Len(t, received[0][models.TableUser], 1)
}
