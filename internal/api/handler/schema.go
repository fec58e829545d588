package handler

import (
	"strings"
	"time"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

func (r *signupRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *loginRequest) normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

type sessionResponse struct {
	User      domain.UserRef `json:"user"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// --- Tickets ---

type createTicketRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Status      string `json:"status"      validate:"required,oneof=open in_progress closed"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

func (r *createTicketRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

// updateTicketRequest carries only the fields present in the PATCH body.
type updateTicketRequest struct {
	Title       *string `json:"title"       validate:"omitnil,min=1,max=200"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	Status      *string `json:"status"      validate:"omitnil,oneof=open in_progress closed"`
	Priority    *string `json:"priority"    validate:"omitnil,oneof=low medium high"`
}

func (r *updateTicketRequest) normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

type ticketListResponse struct {
	Tickets []domain.Ticket `json:"tickets"`
}
