// Package service implements the booking policy: entitlement resolution,
// capacity checks, authorization and orchestration of the stores.
package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// EnrollmentStore reads enrollments.
type EnrollmentStore interface {
	FindByUser(ctx context.Context, userID string) (*model.Enrollment, error)
}

// TicketStore reads the ticket of an enrollment.
type TicketStore interface {
	FindByEnrollment(ctx context.Context, enrollmentID string) (*model.Ticket, error)
}

// TicketWriter extends TicketStore with what ticket reservation needs.
type TicketWriter interface {
	TicketStore
	FindType(ctx context.Context, ticketTypeID string) (*model.TicketType, error)
	Create(ctx context.Context, t model.Ticket) error
}

// RoomStore reads a room with its occupant list.
type RoomStore interface {
	FindWithOccupants(ctx context.Context, roomID string) (*model.Room, error)
}

// BookingStore is the booking record manager. It trusts its caller.
type BookingStore interface {
	Create(ctx context.Context, userID, roomID string) (*model.Booking, error)
	FindByUser(ctx context.Context, userID string) (*model.Booking, error)
	Update(ctx context.Context, bookingID, roomID string) (*model.Booking, error)
	// LockUser serialises booking writes of userID until the surrounding
	// transaction ends.
	LockUser(ctx context.Context, userID string) error
}

// HotelStore reads hotels.
type HotelStore interface {
	List(ctx context.Context) ([]model.Hotel, error)
	FindWithRooms(ctx context.Context, hotelID string) (*model.Hotel, error)
}

// TxRunner runs fn atomically. Stores called with the ctx passed to fn take
// part in the same transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingNotifier is told about committed booking writes.
type BookingNotifier interface {
	Notify(ctx context.Context, event model.BookingEvent) error
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, model.BookingEvent) error { return nil }

var tracer = otel.Tracer("github.com/Shivanand-hulikatti/conference-lodging/internal/service")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if kind := model.KindOf(err); kind != "" {
			span.SetAttributes(attribute.String("error.kind", string(kind)))
		}
	}
	span.End()
}
