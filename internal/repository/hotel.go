package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// HotelRepository handles persistence for hotels and their rooms.
type HotelRepository struct {
	db *pgxpool.Pool
}

// NewHotelRepository constructs a HotelRepository.
func NewHotelRepository(db *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{db: db}
}

// List returns all hotels ordered by name, without rooms.
func (r *HotelRepository) List(ctx context.Context) ([]model.Hotel, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, name, image, created_at FROM hotels ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []model.Hotel
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// FindWithRooms returns a hotel with every room and each room's current occupants.
func (r *HotelRepository) FindWithRooms(ctx context.Context, hotelID string) (*model.Hotel, error) {
	q := conn(ctx, r.db)

	var h model.Hotel
	err := q.QueryRow(ctx,
		`SELECT id, name, image, created_at FROM hotels WHERE id = $1`, hotelID,
	).Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt)
	if err != nil {
		return nil, translate(err, "hotel not found", "get hotel")
	}

	rows, err := q.Query(ctx,
		`SELECT id, hotel_id, name, capacity, created_at FROM rooms WHERE hotel_id = $1 ORDER BY name ASC`,
		hotelID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.HotelID, &room.Name, &room.Capacity, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		byID[room.ID] = len(h.Rooms)
		ids = append(ids, room.ID)
		h.Rooms = append(h.Rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if len(ids) == 0 {
		return &h, nil
	}

	occupants, err := listOccupants(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range occupants {
		if i, ok := byID[b.RoomID]; ok {
			h.Rooms[i].Occupants = append(h.Rooms[i].Occupants, b)
		}
	}
	return &h, nil
}

// RoomRepository handles reads of rooms together with their occupants.
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository constructs a RoomRepository.
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

// FindWithOccupants returns the room and the bookings currently held on it.
//
// Reading the occupant count and inserting a booking later is a check-then-act
// sequence: two requests can both observe a free slot and both insert,
// overbooking the room. When ctx carries a transaction the room row is read
// with SELECT ... FOR UPDATE, so any other transaction admitting to the same
// room blocks until this one commits or rolls back. Callers that write a
// booking must therefore run the read and the write in one TxManager.WithTx.
func (r *RoomRepository) FindWithOccupants(ctx context.Context, roomID string) (*model.Room, error) {
	q := conn(ctx, r.db)

	query := `SELECT id, hotel_id, name, capacity, created_at FROM rooms WHERE id = $1`
	if txFromContext(ctx) != nil {
		query += ` FOR UPDATE`
	}

	var room model.Room
	err := q.QueryRow(ctx, query, roomID).
		Scan(&room.ID, &room.HotelID, &room.Name, &room.Capacity, &room.CreatedAt)
	if err != nil {
		return nil, translate(err, "room not found", "get room")
	}

	room.Occupants, err = listOccupants(ctx, q, []string{room.ID})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func listOccupants(ctx context.Context, q querier, roomIDs []string) ([]model.Booking, error) {
	rows, err := q.Query(ctx, `
SELECT id, user_id, room_id, created_at, updated_at
FROM bookings
WHERE room_id = ANY($1::uuid[])
ORDER BY created_at ASC`,
		roomIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list occupants of %s: %w", strings.Join(roomIDs, ","), err)
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan occupant: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
