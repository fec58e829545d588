package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

// AuthHandler serves the signup, login and logout flows of the request's
// workspace.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Signup creates an account and starts a session for it.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string         false  "Workspace id, falls back to default"
// @Param        body            body      signupRequest  true   "Account details"
// @Success      201             {object}  sessionResponse
// @Failure      400             {object}  errorResponse
// @Failure      409             {object}  errorResponse
// @Failure      500             {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	session, err := ws.Auth.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Login replaces the workspace session when the credentials match.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string        false  "Workspace id, falls back to default"
// @Param        body            body      loginRequest  true   "Credentials"
// @Success      200             {object}  sessionResponse
// @Failure      400             {object}  errorResponse
// @Failure      401             {object}  errorResponse
// @Failure      500             {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	session, err := ws.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Logout clears the workspace session. Logging out twice is not an error.
//
// @Summary      Log out
// @Tags         auth
// @Param        X-Workspace-ID  header  string  false  "Workspace id, falls back to default"
// @Success      204
// @Failure      500  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}
	if err := ws.Auth.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the live session of the workspace.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Param        X-Workspace-ID  header    string  false  "Workspace id, falls back to default"
// @Success      200             {object}  sessionResponse
// @Failure      401             {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}

	session, err := ws.Auth.Current(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "no active session"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}
