package ports

import (
	"context"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

// SessionStore owns the singleton session record of one workspace.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	// Read returns nil when no live session exists. An expired session is
	// removed as a side effect.
	Read(ctx context.Context) (*domain.Session, error)
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
}
