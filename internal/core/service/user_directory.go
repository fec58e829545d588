package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// UserDirectory is the list of registered accounts under the users key.
// It does not enforce email uniqueness; the signup flow checks first.
type UserDirectory struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
}

func NewUserDirectory(kv ports.KeyValueStore, log zerolog.Logger) *UserDirectory {
	return &UserDirectory{kv: kv, log: log}
}

func (d *UserDirectory) List(ctx context.Context) ([]domain.User, error) {
	users, _, err := readJSON[[]domain.User](ctx, d.kv, UsersKey, "users", d.log)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// FindByEmail scans the directory for an exact email match.
func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Add appends u and persists the directory.
func (d *UserDirectory) Add(ctx context.Context, u domain.User) error {
	users, err := d.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, u)
	if err := writeJSON(ctx, d.kv, UsersKey, users); err != nil {
		return fmt.Errorf("add user: %w", err)
	}
	return nil
}
