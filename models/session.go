package models

import "time"

// Session binds an issued token to the user that owns it. Sessions are kept in
// server memory only and are lost on restart.
type Session struct {
	Token     string    `json:"token"`
	UserGUID  string    `json:"userGuid"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// ToRecord converts the session into a SESSION entity record. The token
// doubles as the record id.
func (s Session) ToRecord() Record {
	return Record{
		"token":           s.Token,
		"userGuid":        s.UserGUID,
		RecordIDField:     s.Token,
		RecordEntityField: int(EntitySession),
	}
}

// Expired reports whether the session is past its expiry at t. A zero expiry
// never expires.
func (s Session) Expired(t time.Time) bool {
	return !s.ExpiresAt.IsZero() && t.After(s.ExpiresAt)
}

// LocalSession is what the client keeps between runs to recover its session.
type LocalSession struct {
	Token       string
	CurrentUser Record
	UpdatedAt   time.Time
}
