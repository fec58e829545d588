package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/api/metrics"
	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// DefaultSessionTTL is how long a session issued by signup or login lives.
const DefaultSessionTTL = 24 * time.Hour

// AuthService implements signup, login and logout on top of the user
// directory and the session store of one workspace.
type AuthService struct {
	users      *UserDirectory
	sessions   ports.SessionStore
	hasher     ports.PasswordHasher
	ids        ports.IDGenerator
	clock      ports.Clock
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(
	users *UserDirectory,
	sessions ports.SessionStore,
	hasher ports.PasswordHasher,
	ids ports.IDGenerator,
	clock ports.Clock,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		hasher:     hasher,
		ids:        ids,
		clock:      clock,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Signup registers a new account and starts a session for it.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.Session, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "conflict").Inc()
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
		return nil, fmt.Errorf("signup: %w", err)
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	user := domain.User{
		ID:       s.ids.NewID(),
		Name:     name,
		Email:    email,
		Password: stored,
	}
	if err := s.users.Add(ctx, user); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
		return nil, fmt.Errorf("signup: %w", err)
	}

	session, err := s.startSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("account created")
	return session, nil
}

// Login matches email and password against the directory and replaces the
// current session on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	users, err := s.users.List(ctx)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	var matched *domain.User
	for i := range users {
		if users[i].Email == email && s.hasher.Matches(users[i].Password, password) {
			matched = &users[i]
			break
		}
	}
	if matched == nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.startSession(ctx, *matched)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	s.log.Info().Str("user_id", matched.ID).Msg("login succeeded")
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the live session or domain.ErrSessionNotFound.
func (s *AuthService) Current(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.Read(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *AuthService) startSession(ctx context.Context, user domain.User) (*domain.Session, error) {
	session := domain.Session{
		User:      user.Ref(),
		Token:     s.ids.NewID(),
		ExpiresAt: s.clock.Now().Add(s.sessionTTL).UTC().Truncate(time.Millisecond),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}
