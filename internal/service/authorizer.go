package service

import (
	"context"
	"errors"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// BookingAuthorizer decides whether a user may create or move a booking.
// Checks run in a fixed order and stop at the first failure: entitlement
// first, then room capacity.
type BookingAuthorizer struct {
	entitlements  *EntitlementResolver
	capacity      *CapacityGuard
	bookings      BookingStore
	singleBooking bool
}

// AuthorizerOption configures a BookingAuthorizer.
type AuthorizerOption func(*BookingAuthorizer)

// WithSingleBookingPerUser makes AuthorizeCreate reject users who already
// hold a booking. Without it a second create adds a second booking row.
// The check locks the user first, so it must run inside the same
// transaction as the insert.
func WithSingleBookingPerUser() AuthorizerOption {
	return func(a *BookingAuthorizer) {
		a.singleBooking = true
	}
}

// NewBookingAuthorizer constructs a BookingAuthorizer.
func NewBookingAuthorizer(
	entitlements *EntitlementResolver,
	capacity *CapacityGuard,
	bookings BookingStore,
	opts ...AuthorizerOption,
) *BookingAuthorizer {
	a := &BookingAuthorizer{entitlements: entitlements, capacity: capacity, bookings: bookings}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AuthorizeCreate allows a new booking of roomID for userID.
//
//	no enrollment / no ticket             -> NotFound
//	ticket RESERVED, remote or no hotel   -> Forbidden
//	room missing                          -> NotFound
//	room full                             -> Forbidden
func (a *BookingAuthorizer) AuthorizeCreate(ctx context.Context, userID, roomID string) error {
	ent, err := a.entitlements.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if !allowsLodging(ent) {
		return model.Forbidden("ticket does not include lodging")
	}

	if a.singleBooking {
		if err := a.bookings.LockUser(ctx, userID); err != nil {
			return err
		}
		_, err := a.bookings.FindByUser(ctx, userID)
		switch {
		case err == nil:
			return model.Forbidden("user already has a booking")
		case !errors.Is(err, model.ErrNotFound):
			return err
		}
	}

	return a.admit(ctx, roomID)
}

// AuthorizeUpdate allows moving the user's booking to roomID and returns the
// booking currently held. The ticket is not re-classified here: holding a
// booking is taken as proof the user was entitled when it was created.
func (a *BookingAuthorizer) AuthorizeUpdate(ctx context.Context, userID, roomID string) (*model.Booking, error) {
	current, err := a.bookings.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.Forbidden("user has no booking to update")
		}
		return nil, err
	}

	if err := a.admit(ctx, roomID); err != nil {
		return nil, err
	}
	return current, nil
}

// AuthorizeOwnership rejects a write that touched a booking of another user.
func (a *BookingAuthorizer) AuthorizeOwnership(userID string, b *model.Booking) error {
	if b.UserID != userID {
		return model.Forbidden("booking belongs to another user")
	}
	return nil
}

// admit applies the capacity rule: occupants < capacity.
func (a *BookingAuthorizer) admit(ctx context.Context, roomID string) error {
	room, err := a.capacity.Check(ctx, roomID)
	if err != nil {
		return err
	}
	if !room.HasVacancy() {
		return model.Forbidden("room is at full capacity")
	}
	return nil
}
