package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// UserRef is the public identity carried by a session.
type UserRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the single active login record of a workspace.
type Session struct {
	User      UserRef
	Token     string
	ExpiresAt time.Time
}

// sessionJSON is the persisted layout; expiresAt is unix milliseconds.
type sessionJSON struct {
	User      UserRef `json:"user"`
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expiresAt"`
}

// Expired reports whether the session's expiry instant lies before now,
// compared at millisecond resolution.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.UnixMilli() < now.UnixMilli()
}

func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionJSON{
		User:      s.User,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UnixMilli(),
	})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var raw sessionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.User = raw.User
	s.Token = raw.Token
	s.ExpiresAt = time.UnixMilli(raw.ExpiresAt).UTC()
	return nil
}
