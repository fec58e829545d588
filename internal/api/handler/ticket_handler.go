package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

// TicketHandler handles HTTP requests for ticket operations.
type TicketHandler struct{}

func NewTicketHandler() *TicketHandler {
	return &TicketHandler{}
}

// List handles GET /v1/tickets.
//
// @Summary      List tickets in creation order
// @Tags         tickets
// @Produce      json
// @Param        X-Workspace-ID  header    string  false  "Workspace id, falls back to default"
// @Success      200             {object}  ticketListResponse
// @Failure      401             {object}  errorResponse
// @Failure      500             {object}  errorResponse
// @Router       /v1/tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}

	tickets, err := ws.Tickets.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticketListResponse{Tickets: tickets})
}

// Create handles POST /v1/tickets.
//
// @Summary      Create a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string               false  "Workspace id, falls back to default"
// @Param        body            body      createTicketRequest  true   "Ticket details"
// @Success      201             {object}  domain.Ticket
// @Failure      400             {object}  errorResponse
// @Failure      401             {object}  errorResponse
// @Failure      500             {object}  errorResponse
// @Router       /v1/tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ticket, err := ws.Tickets.Create(c.Request().Context(), toTicketInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}

// Update handles PATCH /v1/tickets/:id.
//
// @Summary      Update ticket fields
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string               false  "Workspace id, falls back to default"
// @Param        id              path      string               true   "Ticket id"
// @Param        body            body      updateTicketRequest  true   "Fields to change"
// @Success      200             {object}  domain.Ticket
// @Failure      400             {object}  errorResponse
// @Failure      401             {object}  errorResponse
// @Failure      404             {object}  errorResponse
// @Failure      500             {object}  errorResponse
// @Router       /v1/tickets/{id} [patch]
func (h *TicketHandler) Update(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}

	var req updateTicketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ticket, err := ws.Tickets.Update(c.Request().Context(), c.Param("id"), toTicketPatch(req))
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

// Delete handles DELETE /v1/tickets/:id.
//
// @Summary      Delete a ticket
// @Tags         tickets
// @Param        X-Workspace-ID  header    string  false  "Workspace id, falls back to default"
// @Param        id              path      string  true   "Ticket id"
// @Success      204
// @Failure      401             {object}  errorResponse
// @Failure      404             {object}  errorResponse
// @Failure      500             {object}  errorResponse
// @Router       /v1/tickets/{id} [delete]
func (h *TicketHandler) Delete(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}

	removed, err := ws.Tickets.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !removed {
		return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrTicketNotFound.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
