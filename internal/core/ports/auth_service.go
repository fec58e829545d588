package ports

import (
	"context"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.Session, error)
}
