package handler

import (
	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// --- Request → Service input ---

func toTicketInput(req createTicketRequest) ports.TicketInput {
	return ports.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TicketStatus(req.Status),
		Priority:    domain.Priority(req.Priority),
	}
}

func toTicketPatch(req updateTicketRequest) ports.TicketPatch {
	patch := ports.TicketPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		s := domain.TicketStatus(*req.Status)
		patch.Status = &s
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		patch.Priority = &p
	}
	return patch
}

// --- Service output → Response ---

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		User:      s.User,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC(),
	}
}
