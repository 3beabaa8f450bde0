package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// TicketRepository handles persistence for tickets and ticket types.
type TicketRepository struct {
	db *pgxpool.Pool
}

// NewTicketRepository constructs a TicketRepository.
func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db: db}
}

// FindByEnrollment returns the enrollment's ticket together with its type.
func (r *TicketRepository) FindByEnrollment(ctx context.Context, enrollmentID string) (*model.Ticket, error) {
	const query = `
SELECT t.id, t.enrollment_id, t.status, t.created_at, t.updated_at,
       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel
FROM tickets t
JOIN ticket_types tt ON tt.id = t.ticket_type_id
WHERE t.enrollment_id = $1`

	var t model.Ticket
	err := conn(ctx, r.db).QueryRow(ctx, query, enrollmentID).Scan(
		&t.ID, &t.EnrollmentID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&t.Type.ID, &t.Type.Name, &t.Type.Price, &t.Type.IsRemote, &t.Type.IncludesHotel,
	)
	if err != nil {
		return nil, translate(err, "ticket not found", "find ticket")
	}
	return &t, nil
}

// FindType returns a single ticket type.
func (r *TicketRepository) FindType(ctx context.Context, ticketTypeID string) (*model.TicketType, error) {
	const query = `SELECT id, name, price, is_remote, includes_hotel FROM ticket_types WHERE id = $1`

	var tt model.TicketType
	err := conn(ctx, r.db).QueryRow(ctx, query, ticketTypeID).
		Scan(&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel)
	if err != nil {
		return nil, translate(err, "ticket type not found", "find ticket type")
	}
	return &tt, nil
}

// Create inserts a ticket. Timestamps are set by the caller.
func (r *TicketRepository) Create(ctx context.Context, t model.Ticket) error {
	const stmt = `
INSERT INTO tickets (id, enrollment_id, ticket_type_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := conn(ctx, r.db).Exec(ctx, stmt,
		t.ID, t.EnrollmentID, t.Type.ID, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return translate(err, "ticket type not found", "insert ticket")
	}
	return nil
}
