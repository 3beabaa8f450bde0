package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// HotelAPI is what the hotel handlers need from the service layer.
type HotelAPI interface {
	ListHotels(ctx context.Context, userID string) ([]model.Hotel, error)
	GetHotel(ctx context.Context, userID, hotelID string) (*model.Hotel, error)
}

// HotelHandler holds the HTTP handlers for /hotels.
type HotelHandler struct {
	svc    HotelAPI
	logger *slog.Logger
}

// NewHotelHandler constructs a HotelHandler.
func NewHotelHandler(svc HotelAPI, logger *slog.Logger) *HotelHandler {
	return &HotelHandler{svc: svc, logger: logger}
}

type roomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Occupants int       `json:"occupants"`
	HotelID   string    `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
}

type hotelResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Image     string         `json:"image"`
	CreatedAt time.Time      `json:"createdAt"`
	Rooms     []roomResponse `json:"rooms"`
}

// List handles GET /hotels
func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.svc.ListHotels(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

// Get handles GET /hotels/{hotelId}
// Rooms carry their current occupant count.
func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	hotelID, err := urlID(r, "hotelId")
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	hotel, err := h.svc.GetHotel(r.Context(), UserIDFrom(r.Context()), hotelID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	resp := hotelResponse{
		ID:        hotel.ID,
		Name:      hotel.Name,
		Image:     hotel.Image,
		CreatedAt: hotel.CreatedAt,
		Rooms:     make([]roomResponse, 0, len(hotel.Rooms)),
	}
	for _, room := range hotel.Rooms {
		resp.Rooms = append(resp.Rooms, roomResponse{
			ID:        room.ID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			Occupants: room.OccupantCount(),
			HotelID:   room.HotelID,
			CreatedAt: room.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
