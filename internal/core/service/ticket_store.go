package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/api/metrics"
	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// TicketStore implements full-collection CRUD over the tickets key. Every
// call reads the whole array, changes it in memory and writes it back; two
// concurrent writers in one workspace resolve last-writer-wins.
type TicketStore struct {
	kv     ports.KeyValueStore
	clock  ports.Clock
	ids    ports.IDGenerator
	logger zerolog.Logger
}

func NewTicketStore(kv ports.KeyValueStore, clock ports.Clock, ids ports.IDGenerator, logger zerolog.Logger) *TicketStore {
	return &TicketStore{kv: kv, clock: clock, ids: ids, logger: logger}
}

// List returns every ticket in insertion order. An absent or unreadable
// collection yields an empty slice.
func (s *TicketStore) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// Create appends a new ticket with a fresh id and createdAt == updatedAt.
func (s *TicketStore) Create(ctx context.Context, in ports.TicketInput) (*domain.Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	now := s.clock.Now().UTC()
	ticket := domain.Ticket{
		ID:          s.ids.NewID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tickets = append(tickets, ticket)
	if err := s.save(ctx, tickets); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist new ticket")
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	metrics.TicketMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("ticket_id", ticket.ID).Str("status", string(ticket.Status)).Msg("ticket created")

	return &ticket, nil
}

// Update merges patch over the ticket with the given id and refreshes
// updatedAt. It returns domain.ErrTicketNotFound when the id is unknown, in
// which case nothing is written.
func (s *TicketStore) Update(ctx context.Context, id string, patch ports.TicketPatch) (*domain.Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}

	idx := indexOf(tickets, id)
	if idx == -1 {
		return nil, domain.ErrTicketNotFound
	}

	t := &tickets[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	t.UpdatedAt = s.clock.Now().UTC()

	if err := s.save(ctx, tickets); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}

	metrics.TicketMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("ticket_id", id).Msg("ticket updated")

	updated := *t
	return &updated, nil
}

// Delete removes the ticket with the given id and reports whether the
// collection changed. The collection is only written when it did.
func (s *TicketStore) Delete(ctx context.Context, id string) (bool, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return false, fmt.Errorf("delete ticket: %w", err)
	}

	kept := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tickets) {
		return false, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return false, fmt.Errorf("delete ticket: %w", err)
	}

	metrics.TicketMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("ticket_id", id).Msg("ticket deleted")

	return true, nil
}

// Stats counts the current collection by status. Nothing is cached.
func (s *TicketStore) Stats(ctx context.Context) (domain.Stats, error) {
	tickets, err := s.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	var stats domain.Stats
	for _, t := range tickets {
		stats.Count(t)
	}
	return stats, nil
}

func (s *TicketStore) load(ctx context.Context) ([]domain.Ticket, error) {
	tickets, _, err := readJSON[[]domain.Ticket](ctx, s.kv, TicketsKey, "tickets", s.logger)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

func (s *TicketStore) save(ctx context.Context, tickets []domain.Ticket) error {
	return writeJSON(ctx, s.kv, TicketsKey, tickets)
}

func indexOf(tickets []domain.Ticket, id string) int {
	for i := range tickets {
		if tickets[i].ID == id {
			return i
		}
	}
	return -1
}
