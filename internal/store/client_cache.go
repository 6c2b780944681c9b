package store

import (
	"sort"
	"sync"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
)

// EntityHandlerKey is the registry key the cache subscribes under for server
// pushes.
const EntityHandlerKey = "main"

// LocalCache is the client's in-memory copy of server records, one table per
// entity. Records are upserted by id, last write wins, nothing is evicted.
//
// Subscribers are notified after every classification that produced changes.
// They run outside the cache lock and must treat the records they receive as
// read-only.
type LocalCache struct {
	logger *logger.Logger

	mu     sync.RWMutex
	tables map[string]map[string]models.Record

	subsMu  sync.Mutex
	subs    map[int]func(models.Changes)
	nextSub int
}

// NewLocalCache returns a cache with an empty table per known entity.
func NewLocalCache(log *logger.Logger) *LocalCache {
	tables := make(map[string]map[string]models.Record)
	for _, t := range models.EntityTables() {
		tables[t] = make(map[string]models.Record)
	}

	return &LocalCache{
		logger: log,
		tables: tables,
		subs:   make(map[int]func(models.Changes)),
	}
}

// Classify places one record into its entity table. It reports false, and
// changes nothing, when the record has no id, no entity discriminator, or an
// unknown one.
func (c *LocalCache) Classify(record models.Record) (models.Change, bool) {
	change, table, ok := c.classify(record)
	if ok {
		c.notify(models.Changes{table: {change}})
	}
	return change, ok
}

// ClassifyBatch classifies every record of every array in data and returns
// the changes grouped by the data key. Keys whose value is not an array are
// skipped; elements that are not objects or fail classification are dropped.
func (c *LocalCache) ClassifyBatch(data models.EntityData) models.Changes {
	changes := make(models.Changes)

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := 0
	for _, key := range keys {
		records, ok := asRecords(data[key])
		if !ok {
			continue
		}

		list := make([]models.Change, 0, len(records))
		for _, rec := range records {
			if change, _, ok := c.classify(rec); ok {
				list = append(list, change)
			}
		}
		changes[key] = list
		total += len(list)
	}

	if total > 0 {
		c.notify(changes)
	}
	return changes
}

// WrapHandlers returns callbacks that classify the response payload into the
// cache before handing the response and the resulting changes to h.
func (c *LocalCache) WrapHandlers(h models.ChangeHandlers) models.ResponseCallbacks {
	return models.ResponseCallbacks{
		Success: func(resp models.Response) {
			changes := c.ClassifyBatch(resp.EntityData())
			if h.Success != nil {
				h.Success(resp, changes)
			}
		},
		Error: func(resp models.Response) {
			changes := c.ClassifyBatch(resp.EntityData())
			if h.Error != nil {
				h.Error(resp, changes)
			}
		},
		Finally: h.Finally,
	}
}

// RegisterEntityHandlers subscribes the cache to server pushes for every
// entity table, so records broadcast by the server land in the cache.
func (c *LocalCache) RegisterEntityHandlers(r HandlerRegistrar) {
	for _, table := range models.EntityTables() {
		r.AddHandler(table, EntityHandlerKey, func(resp models.Response) {
			changes := c.ClassifyBatch(resp.EntityData())
			c.logger.Debug().Str("api", resp.API).Int("tables", len(changes)).Msg("server push classified")
		})
	}
}

// Get returns the latest record stored under id in table.
func (c *LocalCache) Get(table, id string) (models.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.tables[table][id]
	return rec, ok
}

// Table returns a copy of table's contents keyed by record id.
func (c *LocalCache) Table(table string) map[string]models.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	src := c.tables[table]
	out := make(map[string]models.Record, len(src))
	for id, rec := range src {
		out[id] = rec
	}
	return out
}

// Subscribe registers fn to receive every non-empty change set. The returned
// function removes the subscription.
func (c *LocalCache) Subscribe(fn func(models.Changes)) func() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.subsMu.Lock()
		delete(c.subs, id)
		c.subsMu.Unlock()
	}
}

func (c *LocalCache) classify(record models.Record) (models.Change, string, bool) {
	if record == nil {
		return models.Change{}, "", false
	}

	id, ok := record.ID()
	if !ok {
		return models.Change{}, "", false
	}
	entity, ok := record.Entity()
	if !ok {
		return models.Change{}, "", false
	}
	table, ok := entity.Table()
	if !ok {
		return models.Change{}, "", false
	}

	stored := record.Clone()

	c.mu.Lock()
	_, existed := c.tables[table][id]
	c.tables[table][id] = stored
	c.mu.Unlock()

	changeType := models.ChangeInsert
	if existed {
		changeType = models.ChangeUpdate
	}
	return models.Change{Type: changeType, Record: stored}, table, true
}

func (c *LocalCache) notify(changes models.Changes) {
	c.subsMu.Lock()
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(models.Changes), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.subs[id])
	}
	c.subsMu.Unlock()

	for _, fn := range fns {
		fn(changes)
	}
}

func asRecords(v any) ([]models.Record, bool) {
	switch list := v.(type) {
	case []any:
		out := make([]models.Record, 0, len(list))
		for _, item := range list {
			switch rec := item.(type) {
			case map[string]any:
				out = append(out, models.Record(rec))
			case models.Record:
				out = append(out, rec)
			}
		}
		return out, true
	case []models.Record:
		return list, true
	case []map[string]any:
		out := make([]models.Record, 0, len(list))
		for _, rec := range list {
			out = append(out, models.Record(rec))
		}
		return out, true
	default:
		return nil, false
	}
}
