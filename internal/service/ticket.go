package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// TicketService reads and reserves a user's ticket.
type TicketService struct {
	enrollments EnrollmentStore
	tickets     TicketWriter
	now         func() time.Time
}

// NewTicketService constructs a TicketService.
func NewTicketService(enrollments EnrollmentStore, tickets TicketWriter) *TicketService {
	return &TicketService{
		enrollments: enrollments,
		tickets:     tickets,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GetTicket returns the user's ticket with its type.
func (s *TicketService) GetTicket(ctx context.Context, userID string) (ticket *model.Ticket, err error) {
	ctx, span := startSpan(ctx, "ticket.get", attribute.String("user.id", userID))
	defer func() { endSpan(span, err) }()

	enrollment, err := s.enrollments.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.tickets.FindByEnrollment(ctx, enrollment.ID)
}

// ReserveTicket creates a RESERVED ticket of the given type for the user.
// An enrollment holds at most one ticket.
func (s *TicketService) ReserveTicket(ctx context.Context, userID, ticketTypeID string) (ticket *model.Ticket, err error) {
	ctx, span := startSpan(ctx, "ticket.reserve",
		attribute.String("user.id", userID),
		attribute.String("ticket_type.id", ticketTypeID),
	)
	defer func() { endSpan(span, err) }()

	enrollment, err := s.enrollments.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch _, err := s.tickets.FindByEnrollment(ctx, enrollment.ID); {
	case err == nil:
		return nil, model.Forbidden("enrollment already has a ticket")
	case !errors.Is(err, model.ErrNotFound):
		return nil, err
	}

	ticketType, err := s.tickets.FindType(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := model.Ticket{
		ID:           uuid.New().String(),
		EnrollmentID: enrollment.ID,
		Status:       model.TicketStatusReserved,
		Type:         *ticketType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}
