package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

type stubOpener struct {
	opened   []string
	sessions ports.SessionStore
}

func (o *stubOpener) Open(id string) ports.Workspace {
	o.opened = append(o.opened, id)
	return ports.Workspace{ID: id, Sessions: o.sessions}
}

type stubSessions struct {
	authenticated bool
	err           error
}

func (s stubSessions) Save(context.Context, domain.Session) error    { return nil }
func (s stubSessions) Read(context.Context) (*domain.Session, error) { return nil, nil }
func (s stubSessions) Clear(context.Context) error                   { return nil }
func (s stubSessions) IsAuthenticated(context.Context) (bool, error) { return s.authenticated, s.err }

func TestWorkspace_DefaultsWhenHeaderMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	opener := &stubOpener{}
	handler := Workspace(opener)(func(c echo.Context) error {
		ws, ok := c.Get(WorkspaceKey).(ports.Workspace)
		if !ok || ws.ID != DefaultWorkspace {
			t.Fatalf("unexpected workspace in context: %+v", c.Get(WorkspaceKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(opener.opened) != 1 || opener.opened[0] != DefaultWorkspace {
		t.Fatalf("expected default workspace opened, got %v", opener.opened)
	}
}

func TestWorkspace_UsesHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(WorkspaceHeader, "team_a-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	opener := &stubOpener{}
	handler := Workspace(opener)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(opener.opened) != 1 || opener.opened[0] != "team_a-1" {
		t.Fatalf("expected team_a-1 opened, got %v", opener.opened)
	}
}

func TestWorkspace_RejectsInvalidID(t *testing.T) {
	for _, id := range []string{"a:b", "../etc", "with space", string(bytes.Repeat([]byte("x"), 65))} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(WorkspaceHeader, id)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		opener := &stubOpener{}
		handler := Workspace(opener)(func(c echo.Context) error {
			t.Fatalf("should not reach next handler for %q", id)
			return nil
		})

		_ = handler(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%q: expected 400, got %d", id, rec.Code)
		}
		if len(opener.opened) != 0 {
			t.Fatalf("%q: workspace must not be opened", id)
		}
	}
}

func TestRequireSession_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(WorkspaceKey, ports.Workspace{ID: "default", Sessions: stubSessions{authenticated: true}})

	called := false
	handler := RequireSession()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireSession_Rejects(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(WorkspaceKey, ports.Workspace{ID: "default", Sessions: stubSessions{}})

	handler := RequireSession()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}

func TestRequireSession_PropagatesBackendError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	backendErr := errors.New("connection refused")
	c.Set(WorkspaceKey, ports.Workspace{ID: "default", Sessions: stubSessions{err: backendErr}})

	handler := RequireSession()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestRequireSession_WithoutWorkspace(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := RequireSession()(func(c echo.Context) error { return nil })(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 HTTPError, got %v", err)
	}
}

func TestRequestLogger_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
	req.Header.Set(WorkspaceHeader, "alpha")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var evt map[string]any
	if err := json.Unmarshal(buf.Bytes(), &evt); err != nil {
		t.Fatalf("expected one JSON log line, got %q", buf.String())
	}
	if evt["method"] != "GET" || evt["uri"] != "/v1/tickets" || evt["workspace"] != "alpha" {
		t.Fatalf("unexpected log event: %v", evt)
	}
	if evt["status"] != float64(http.StatusNoContent) {
		t.Fatalf("expected status 204 in log, got %v", evt["status"])
	}
}
