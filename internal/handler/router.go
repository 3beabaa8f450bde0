package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RouterConfig carries everything NewRouter wires into the route table.
type RouterConfig struct {
	Bookings    BookingAPI
	Hotels      HotelAPI
	Tickets     TicketAPI
	Enrollments EnrollmentAPI
	JWTSecret   string
	CORSOrigins []string
	Logger      *slog.Logger
}

// NewRouter builds the HTTP API. Everything except /health requires a
// Bearer token.
func NewRouter(cfg RouterConfig) http.Handler {
	bookingHandler := NewBookingHandler(cfg.Bookings, cfg.Logger)
	hotelHandler := NewHotelHandler(cfg.Hotels, cfg.Logger)
	ticketHandler := NewTicketHandler(cfg.Tickets, cfg.Logger)
	enrollmentHandler := NewEnrollmentHandler(cfg.Enrollments, cfg.Logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(cfg.Logger))
	r.Use(CORS(cfg.CORSOrigins))

	r.Get("/health", HealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(Authenticate(cfg.JWTSecret))

		r.Route("/booking", func(r chi.Router) {
			r.Post("/", bookingHandler.Create)
			r.Get("/", bookingHandler.Get)
			r.Put("/{bookingId}", bookingHandler.Update)
		})
		r.Route("/hotels", func(r chi.Router) {
			r.Get("/", hotelHandler.List)
			r.Get("/{hotelId}", hotelHandler.Get)
		})
		r.Get("/enrollments", enrollmentHandler.Get)
		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", ticketHandler.Get)
			r.Post("/", ticketHandler.Reserve)
		})
	})

	return r
}
