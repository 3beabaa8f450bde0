package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// TicketAPI is what the ticket handlers need from the service layer.
type TicketAPI interface {
	GetTicket(ctx context.Context, userID string) (*model.Ticket, error)
	ReserveTicket(ctx context.Context, userID, ticketTypeID string) (*model.Ticket, error)
}

// TicketHandler holds the HTTP handlers for /tickets.
type TicketHandler struct {
	svc    TicketAPI
	logger *slog.Logger
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(svc TicketAPI, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{svc: svc, logger: logger}
}

// Get handles GET /tickets
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.svc.GetTicket(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// Reserve handles POST /tickets
func (h *TicketHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req model.ReserveTicketRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	typeID, err := parseID("ticketTypeId", req.TicketTypeID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	ticket, err := h.svc.ReserveTicket(r.Context(), UserIDFrom(r.Context()), typeID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}
