package service

import (
	"context"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// EntitlementResolver gathers the enrollment and ticket of a user. It only
// reads; deciding what the ticket allows is left to its callers.
type EntitlementResolver struct {
	enrollments EnrollmentStore
	tickets     TicketStore
}

// NewEntitlementResolver constructs an EntitlementResolver.
func NewEntitlementResolver(enrollments EnrollmentStore, tickets TicketStore) *EntitlementResolver {
	return &EntitlementResolver{enrollments: enrollments, tickets: tickets}
}

// Resolve fails NotFound when the user has no enrollment or the enrollment
// has no ticket.
func (r *EntitlementResolver) Resolve(ctx context.Context, userID string) (model.Entitlement, error) {
	enrollment, err := r.enrollments.FindByUser(ctx, userID)
	if err != nil {
		return model.Entitlement{}, err
	}
	ticket, err := r.tickets.FindByEnrollment(ctx, enrollment.ID)
	if err != nil {
		return model.Entitlement{}, err
	}
	return model.Entitlement{Enrollment: *enrollment, Ticket: *ticket}, nil
}

// allowsLodging is true only for a paid, in-person ticket whose type includes hotel.
func allowsLodging(e model.Entitlement) bool {
	return e.Status() == model.TicketStatusPaid && !e.IsRemote() && e.IncludesHotel()
}
