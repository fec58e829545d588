package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ticketapp/ticket-system/internal/api/middleware"
	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

type stubAuthService struct {
	signupFn  func(ctx context.Context, name, email, password string) (*domain.Session, error)
	loginFn   func(ctx context.Context, email, password string) (*domain.Session, error)
	logoutFn  func(ctx context.Context) error
	currentFn func(ctx context.Context) (*domain.Session, error)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password string) (*domain.Session, error) {
	return s.signupFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context) error {
	return s.logoutFn(ctx)
}

func (s *stubAuthService) Current(ctx context.Context) (*domain.Session, error) {
	return s.currentFn(ctx)
}

type stubTicketStore struct {
	listFn   func(ctx context.Context) ([]domain.Ticket, error)
	createFn func(ctx context.Context, in ports.TicketInput) (*domain.Ticket, error)
	updateFn func(ctx context.Context, id string, patch ports.TicketPatch) (*domain.Ticket, error)
	deleteFn func(ctx context.Context, id string) (bool, error)
	statsFn  func(ctx context.Context) (domain.Stats, error)
}

func (s *stubTicketStore) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.listFn(ctx)
}

func (s *stubTicketStore) Create(ctx context.Context, in ports.TicketInput) (*domain.Ticket, error) {
	return s.createFn(ctx, in)
}

func (s *stubTicketStore) Update(ctx context.Context, id string, patch ports.TicketPatch) (*domain.Ticket, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubTicketStore) Delete(ctx context.Context, id string) (bool, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubTicketStore) Stats(ctx context.Context) (domain.Stats, error) {
	return s.statsFn(ctx)
}

// newContext builds an echo.Context carrying ws, as the Workspace middleware
// would, for a JSON request with the given body.
func newContext(method, target, body string, ws ports.Workspace) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.WorkspaceKey, ws)
	return c, rec
}
