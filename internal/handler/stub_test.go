package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

const (
	testSecret = "test-secret"
	testUserID = "6f1c2d3e-4a5b-4c6d-8e7f-9a0b1c2d3e4f"
	testRoomID = "0b8e6c1a-2f3d-4e5f-8a9b-1c2d3e4f5a6b"
)

type stubBookings struct {
	createFn func(ctx context.Context, userID, roomID string) (model.BookingResult, error)
	getFn    func(ctx context.Context, userID string) (model.BookingView, error)
	updateFn func(ctx context.Context, userID, roomID, bookingID string) (model.BookingResult, error)
}

func (s *stubBookings) CreateBooking(ctx context.Context, userID, roomID string) (model.BookingResult, error) {
	return s.createFn(ctx, userID, roomID)
}

func (s *stubBookings) GetBooking(ctx context.Context, userID string) (model.BookingView, error) {
	return s.getFn(ctx, userID)
}

func (s *stubBookings) UpdateBooking(ctx context.Context, userID, roomID, bookingID string) (model.BookingResult, error) {
	return s.updateFn(ctx, userID, roomID, bookingID)
}

type stubHotels struct {
	listFn func(ctx context.Context, userID string) ([]model.Hotel, error)
	getFn  func(ctx context.Context, userID, hotelID string) (*model.Hotel, error)
}

func (s *stubHotels) ListHotels(ctx context.Context, userID string) ([]model.Hotel, error) {
	return s.listFn(ctx, userID)
}

func (s *stubHotels) GetHotel(ctx context.Context, userID, hotelID string) (*model.Hotel, error) {
	return s.getFn(ctx, userID, hotelID)
}

type stubTickets struct {
	getFn     func(ctx context.Context, userID string) (*model.Ticket, error)
	reserveFn func(ctx context.Context, userID, ticketTypeID string) (*model.Ticket, error)
}

func (s *stubTickets) GetTicket(ctx context.Context, userID string) (*model.Ticket, error) {
	return s.getFn(ctx, userID)
}

func (s *stubTickets) ReserveTicket(ctx context.Context, userID, ticketTypeID string) (*model.Ticket, error) {
	return s.reserveFn(ctx, userID, ticketTypeID)
}

type stubEnrollments struct {
	getFn func(ctx context.Context, userID string) (*model.Enrollment, error)
}

func (s *stubEnrollments) GetEnrollment(ctx context.Context, userID string) (*model.Enrollment, error) {
	return s.getFn(ctx, userID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRouterConfig() RouterConfig {
	return RouterConfig{
		Bookings:    &stubBookings{},
		Hotels:      &stubHotels{},
		Tickets:     &stubTickets{},
		Enrollments: &stubEnrollments{},
		JWTSecret:   testSecret,
		CORSOrigins: []string{"*"},
		Logger:      discardLogger(),
	}
}

func newTestRouter(b *stubBookings, h *stubHotels, tk *stubTickets) http.Handler {
	cfg := testRouterConfig()
	if b != nil {
		cfg.Bookings = b
	}
	if h != nil {
		cfg.Hotels = h
	}
	if tk != nil {
		cfg.Tickets = tk
	}
	return NewRouter(cfg)
}

// do sends an authenticated request as testUserID.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := IssueToken(testSecret, testUserID, time.Minute)
	require.NoError(t, err)

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
