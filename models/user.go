package models

import (
	"encoding/json"
	"fmt"
)

// User is the account entity stored in the users file. Field names follow the
// JSON document layout so records can be exchanged with clients unchanged.
type User struct {
	// ID is the document identifier. It becomes the record "id" on the wire.
	ID string `json:"_id"`

	// GUID identifies the user across sessions.
	GUID string `json:"guid"`

	IsActive bool     `json:"isActive"`
	Balance  string   `json:"balance"`
	Picture  string   `json:"picture"`
	Age      int      `json:"age"`
	EyeColor string   `json:"eyeColor"`
	Name     UserName `json:"name"`
	Company  string   `json:"company"`
	Email    string   `json:"email"`

	// Password holds either a bcrypt hash or, for seed data, the plain value.
	// It never leaves the server: ToRecord strips it.
	Password string `json:"password"`

	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UserName is the nested name object of a [User].
type UserName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// ToRecord converts the user into a USER entity record ready to be sent to
// clients: password removed, id and id_entity attached.
func (u User) ToRecord() (Record, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("error marshaling user: %w", err)
	}

	record := make(Record)
	if err = json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("error converting user to record: %w", err)
	}

	delete(record, "password")
	record[RecordIDField] = u.ID
	record[RecordEntityField] = int(EntityUser)

	return record, nil
}

// ToDocument returns the user as a generic JSON object, password included.
// Used by path based profile edits.
func (u User) ToDocument() (map[string]any, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("error marshaling user: %w", err)
	}

	doc := make(map[string]any)
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error converting user to document: %w", err)
	}
	return doc, nil
}

// UserFromDocument decodes a generic JSON object back into a [User]. Values
// with the wrong JSON type for their field are rejected.
func UserFromDocument(doc map[string]any) (User, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return User{}, fmt.Errorf("error marshaling document: %w", err)
	}

	var u User
	if err = json.Unmarshal(raw, &u); err != nil {
		return User{}, fmt.Errorf("error decoding user document: %w", err)
	}
	return u, nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
