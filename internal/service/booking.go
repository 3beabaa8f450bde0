package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// BookingService exposes booking operations to the request-handling layer.
// Every write is authorized and performed inside one transaction, so the
// capacity read and the booking write cannot interleave with another writer
// of the same room.
type BookingService struct {
	tx       TxRunner
	authz    *BookingAuthorizer
	bookings BookingStore
	notifier BookingNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// BookingServiceOption configures a BookingService.
type BookingServiceOption func(*BookingService)

// WithNotifier sets where committed booking writes are announced.
func WithNotifier(n BookingNotifier) BookingServiceOption {
	return func(s *BookingService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewBookingService constructs a BookingService with its dependencies.
func NewBookingService(
	tx TxRunner,
	authz *BookingAuthorizer,
	bookings BookingStore,
	opts ...BookingServiceOption,
) *BookingService {
	s := &BookingService{
		tx:       tx,
		authz:    authz,
		bookings: bookings,
		notifier: NopNotifier{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBooking books roomID for userID and returns the new booking id.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID string) (res model.BookingResult, err error) {
	ctx, span := startSpan(ctx, "booking.create",
		attribute.String("user.id", userID),
		attribute.String("room.id", roomID),
	)
	defer func() { endSpan(span, err) }()

	var booking *model.Booking
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.authz.AuthorizeCreate(txCtx, userID, roomID); err != nil {
			return err
		}
		b, err := s.bookings.Create(txCtx, userID, roomID)
		if err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "create booking", err, userID, roomID)
		return model.BookingResult{}, err
	}

	s.logger.InfoContext(ctx, "booking created",
		slog.String("booking_id", booking.ID),
		slog.String("user_id", userID),
		slog.String("room_id", roomID),
	)
	s.notify(ctx, model.BookingCreated, booking)
	return model.BookingResult{BookingID: booking.ID}, nil
}

// GetBooking returns the user's booking with its room, or NotFound.
func (s *BookingService) GetBooking(ctx context.Context, userID string) (view model.BookingView, err error) {
	ctx, span := startSpan(ctx, "booking.get", attribute.String("user.id", userID))
	defer func() { endSpan(span, err) }()

	b, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		return model.BookingView{}, err
	}
	view = model.BookingView{ID: b.ID}
	if b.Room != nil {
		view.Room = *b.Room
	}
	return view, nil
}

// UpdateBooking moves the user's booking bookingID to roomID.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID string) (res model.BookingResult, err error) {
	ctx, span := startSpan(ctx, "booking.update",
		attribute.String("user.id", userID),
		attribute.String("room.id", roomID),
		attribute.String("booking.id", bookingID),
	)
	defer func() { endSpan(span, err) }()

	var booking *model.Booking
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.authz.AuthorizeUpdate(txCtx, userID, roomID); err != nil {
			return err
		}
		b, err := s.bookings.Update(txCtx, bookingID, roomID)
		if err != nil {
			return err
		}
		// Rolls the update back when bookingID is someone else's.
		if err := s.authz.AuthorizeOwnership(userID, b); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "update booking", err, userID, roomID)
		return model.BookingResult{}, err
	}

	s.logger.InfoContext(ctx, "booking updated",
		slog.String("booking_id", booking.ID),
		slog.String("user_id", userID),
		slog.String("room_id", roomID),
	)
	s.notify(ctx, model.BookingUpdated, booking)
	return model.BookingResult{BookingID: booking.ID}, nil
}

func (s *BookingService) notify(ctx context.Context, eventType string, b *model.Booking) {
	event := model.BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		OccurredAt: s.now(),
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "publish booking event",
			slog.String("event", eventType),
			slog.String("booking_id", b.ID),
			slog.Any("error", err),
		)
	}
}

// logFailure logs only unexpected errors; policy outcomes are returned silently.
func (s *BookingService) logFailure(ctx context.Context, op string, err error, userID, roomID string) {
	if model.KindOf(err) != "" {
		return
	}
	s.logger.ErrorContext(ctx, op,
		slog.String("user_id", userID),
		slog.String("room_id", roomID),
		slog.Any("error", err),
	)
}
