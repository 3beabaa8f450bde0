package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// BookingRepository handles persistence for bookings. It performs no
// authorization; callers decide whether a write is allowed.
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking with a generated UUID and returns it with a room snapshot.
func (r *BookingRepository) Create(ctx context.Context, userID, roomID string) (*model.Booking, error) {
	now := time.Now().UTC()
	b := &model.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		RoomID:    roomID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := conn(ctx, r.db).Exec(ctx,
		`INSERT INTO bookings (id, user_id, room_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.UserID, b.RoomID, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, "room not found", "insert booking")
	}
	return r.attachRoom(ctx, b)
}

// FindByUser returns the user's oldest booking with a room snapshot.
func (r *BookingRepository) FindByUser(ctx context.Context, userID string) (*model.Booking, error) {
	var b model.Booking
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, user_id, room_id, created_at, updated_at
		 FROM bookings
		 WHERE user_id = $1
		 ORDER BY created_at ASC
		 LIMIT 1`,
		userID,
	).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translate(err, "booking not found", "get booking")
	}
	return r.attachRoom(ctx, &b)
}

// Update points an existing booking at another room.
func (r *BookingRepository) Update(ctx context.Context, bookingID, roomID string) (*model.Booking, error) {
	var b model.Booking
	err := conn(ctx, r.db).QueryRow(ctx,
		`UPDATE bookings SET room_id = $2, updated_at = $3
		 WHERE id = $1
		 RETURNING id, user_id, room_id, created_at, updated_at`,
		bookingID, roomID, time.Now().UTC(),
	).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translate(err, "booking not found", "update booking")
	}
	return r.attachRoom(ctx, &b)
}

// LockUser takes a transaction-scoped advisory lock keyed on userID, so booking
// writes of one user run one at a time. Outside a transaction the lock is
// released as soon as the statement ends.
func (r *BookingRepository) LockUser(ctx context.Context, userID string) error {
	if _, err := conn(ctx, r.db).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID); err != nil {
		return fmt.Errorf("lock user bookings: %w", err)
	}
	return nil
}

func (r *BookingRepository) attachRoom(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	var room model.Room
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, hotel_id, name, capacity, created_at FROM rooms WHERE id = $1`, b.RoomID,
	).Scan(&room.ID, &room.HotelID, &room.Name, &room.Capacity, &room.CreatedAt)
	if err != nil {
		return nil, translate(err, "room not found", "get booking room")
	}
	b.Room = &room
	return b, nil
}
