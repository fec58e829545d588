package ports

import (
	"context"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

// TicketInput carries the caller-validated fields of a new ticket.
type TicketInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
	Priority    domain.Priority
}

// TicketPatch lists the mutable fields of a ticket. Nil fields are left
// untouched; id and createdAt are not representable here.
type TicketPatch struct {
	Title       *string
	Description *string
	Status      *domain.TicketStatus
	Priority    *domain.Priority
}

// TicketStore owns the ticket collection of one workspace.
type TicketStore interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	Create(ctx context.Context, in TicketInput) (*domain.Ticket, error)
	// Update returns domain.ErrTicketNotFound when no ticket has the id.
	Update(ctx context.Context, id string, patch TicketPatch) (*domain.Ticket, error)
	// Delete reports whether a ticket was removed.
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (domain.Stats, error)
}
