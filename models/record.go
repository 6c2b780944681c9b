package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record field names every entity record must carry.
const (
	RecordIDField     = "id"
	RecordEntityField = "id_entity"
)

// Entity is the entity discriminator carried in a record's id_entity field.
type Entity int

// Known entities.
const (
	EntityUser    Entity = 1
	EntitySession Entity = 2
)

// Entity table names. They are also the api names used for server pushes.
const (
	TableUser    = "USER"
	TableSession = "SESSION"
)

var entityTables = map[Entity]string{
	EntityUser:    TableUser,
	EntitySession: TableSession,
}

// Table returns the local table name for the entity, or false for unknown
// entities.
func (e Entity) Table() (string, bool) {
	t, ok := entityTables[e]
	return t, ok
}

// EntityTables lists all known table names in a stable order.
func EntityTables() []string {
	return []string{TableUser, TableSession}
}

// Record is a generic entity record as received on the wire.
type Record map[string]any

// ID returns the string form of the record id.
func (r Record) ID() (string, bool) {
	v, ok := r[RecordIDField]
	if !ok || v == nil {
		return "", false
	}

	switch id := v.(type) {
	case string:
		return id, true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case json.Number:
		return id.String(), true
	default:
		return fmt.Sprint(id), true
	}
}

// Entity returns the record's entity discriminator.
func (r Record) Entity() (Entity, bool) {
	v, ok := r[RecordEntityField]
	if !ok || v == nil {
		return 0, false
	}

	switch e := v.(type) {
	case int:
		return Entity(e), true
	case int64:
		return Entity(e), true
	case float64:
		if e != float64(int64(e)) {
			return 0, false
		}
		return Entity(e), true
	case json.Number:
		n, err := e.Int64()
		if err != nil {
			return 0, false
		}
		return Entity(n), true
	case string:
		n, err := strconv.Atoi(e)
		if err != nil {
			return 0, false
		}
		return Entity(n), true
	default:
		return 0, false
	}
}

// String returns the string value stored under key, or "" when absent or not
// a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// EntityData is a response payload keyed by entity table name. Values are
// expected to be arrays of records; anything else is ignored by the
// classifier.
type EntityData map[string]any

// ChangeType tags a classified record as new or replaced.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
)

// Change is the result of classifying one record.
type Change struct {
	Type   ChangeType `json:"type"`
	Record Record     `json:"record"`
}

// Changes lists classified changes per table.
type Changes map[string][]Change
