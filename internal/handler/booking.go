package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// BookingAPI is what the booking handlers need from the service layer.
type BookingAPI interface {
	CreateBooking(ctx context.Context, userID, roomID string) (model.BookingResult, error)
	GetBooking(ctx context.Context, userID string) (model.BookingView, error)
	UpdateBooking(ctx context.Context, userID, roomID, bookingID string) (model.BookingResult, error)
}

// BookingHandler holds the HTTP handlers for /booking.
type BookingHandler struct {
	svc    BookingAPI
	logger *slog.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc BookingAPI, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// Create handles POST /booking
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	roomID, err := decodeRoomID(w, r)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	res, err := h.svc.CreateBooking(r.Context(), UserIDFrom(r.Context()), roomID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Get handles GET /booking
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetBooking(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Update handles PUT /booking/{bookingId}
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	bookingID, err := urlID(r, "bookingId")
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	roomID, err := decodeRoomID(w, r)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	res, err := h.svc.UpdateBooking(r.Context(), UserIDFrom(r.Context()), roomID, bookingID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func decodeRoomID(w http.ResponseWriter, r *http.Request) (string, error) {
	var req model.BookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return "", err
	}
	return parseID("roomId", req.RoomID)
}
