package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/portalauth/internal/models"
)

var errMalformed = errors.New("malformed session record")

// Session is the logged-in state: the user (password stripped), when the
// session started and which tier it lives in.
type Session struct {
	User       models.User
	CreatedAt  time.Time
	Persistent bool
}

// wireSession is the stored JSON shape. Timestamp is Unix milliseconds.
type wireSession struct {
	User       *models.User `json:"user"`
	Timestamp  *int64       `json:"timestamp"`
	RememberMe bool         `json:"rememberMe"`
}

func (s Session) MarshalJSON() ([]byte, error) {
	ts := s.CreatedAt.UnixMilli()
	u := s.User.WithoutPassword()
	return json.Marshal(wireSession{User: &u, Timestamp: &ts, RememberMe: s.Persistent})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w wireSession
	if err := dec.Decode(&w); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	if w.Timestamp == nil {
		return fmt.Errorf("%w: missing timestamp", errMalformed)
	}
	if w.User == nil || w.User.Email == "" {
		return fmt.Errorf("%w: missing user", errMalformed)
	}

	s.User = w.User.WithoutPassword()
	s.CreatedAt = time.UnixMilli(*w.Timestamp)
	s.Persistent = w.RememberMe
	return nil
}

func encode(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

func decode(data []byte) (*Session, error) {
	s := &Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}
