package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/api/metrics"
	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// SessionStore persists the single current session of a workspace.
type SessionStore struct {
	kv    ports.KeyValueStore
	clock ports.Clock
	log   zerolog.Logger
}

func NewSessionStore(kv ports.KeyValueStore, clock ports.Clock, log zerolog.Logger) *SessionStore {
	return &SessionStore{kv: kv, clock: clock, log: log}
}

// Save replaces any prior session with s. The caller guarantees that
// s.ExpiresAt lies in the future.
func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	if err := writeJSON(ctx, s.kv, SessionKey, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Read returns the persisted session, or nil when there is none. Expiry is
// checked here and only here: an expired session is deleted and reported
// absent.
func (s *SessionStore) Read(ctx context.Context) (*domain.Session, error) {
	session, found, err := readJSON[domain.Session](ctx, s.kv, SessionKey, "session", s.log)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return nil, nil
	}

	if session.Expired(s.clock.Now()) {
		if err := s.Clear(ctx); err != nil {
			return nil, fmt.Errorf("read session: %w", err)
		}
		metrics.SessionsExpiredTotal.Inc()
		s.log.Debug().Str("user_id", session.User.ID).Msg("expired session removed")
		return nil, nil
	}

	return &session, nil
}

// Clear removes the session. Clearing an absent session is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.RemoveItem(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.Read(ctx)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}
