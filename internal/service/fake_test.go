package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// fakeStore is an in-memory implementation of every store interface.
type fakeStore struct {
	enrollments map[string]model.Enrollment // by user id
	tickets     map[string]model.Ticket     // by enrollment id
	types       map[string]model.TicketType
	rooms       map[string]model.Room
	hotels      []model.Hotel
	bookings    []model.Booking

	createCalls int
	updateCalls int
	lockCalls   int
	inTx        bool
	unlocked    int // LockUser calls made outside a transaction
	seq         int
	failWith    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		enrollments: map[string]model.Enrollment{},
		tickets:     map[string]model.Ticket{},
		types:       map[string]model.TicketType{},
		rooms:       map[string]model.Room{},
	}
}

// givenUser registers an enrollment and a ticket for userID.
func (f *fakeStore) givenUser(userID string, status model.TicketStatus, isRemote, includesHotel bool) {
	enrollmentID := "enr-" + userID
	f.enrollments[userID] = model.Enrollment{ID: enrollmentID, UserID: userID}
	f.tickets[enrollmentID] = model.Ticket{
		ID:           "tkt-" + userID,
		EnrollmentID: enrollmentID,
		Status:       status,
		Type:         model.TicketType{ID: "type-1", IsRemote: isRemote, IncludesHotel: includesHotel},
	}
}

// givenRoom registers a room already holding `occupied` bookings of other users.
func (f *fakeStore) givenRoom(roomID string, capacity, occupied int) {
	f.rooms[roomID] = model.Room{ID: roomID, HotelID: "hotel-1", Name: roomID, Capacity: capacity}
	for i := 0; i < occupied; i++ {
		f.bookings = append(f.bookings, model.Booking{
			ID:     fmt.Sprintf("seed-%s-%d", roomID, i),
			UserID: fmt.Sprintf("other-%d", i),
			RoomID: roomID,
		})
	}
}

func (f *fakeStore) FindByUser(_ context.Context, userID string) (*model.Enrollment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	e, ok := f.enrollments[userID]
	if !ok {
		return nil, model.NotFound("enrollment not found")
	}
	return &e, nil
}

func (f *fakeStore) FindByEnrollment(_ context.Context, enrollmentID string) (*model.Ticket, error) {
	t, ok := f.tickets[enrollmentID]
	if !ok {
		return nil, model.NotFound("ticket not found")
	}
	return &t, nil
}

func (f *fakeStore) FindType(_ context.Context, id string) (*model.TicketType, error) {
	tt, ok := f.types[id]
	if !ok {
		return nil, model.NotFound("ticket type not found")
	}
	return &tt, nil
}

func (f *fakeStore) Create(_ context.Context, t model.Ticket) error {
	f.tickets[t.EnrollmentID] = t
	return nil
}

func (f *fakeStore) FindWithOccupants(_ context.Context, roomID string) (*model.Room, error) {
	room, ok := f.rooms[roomID]
	if !ok {
		return nil, model.NotFound("room not found")
	}
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			room.Occupants = append(room.Occupants, b)
		}
	}
	return &room, nil
}

func (f *fakeStore) List(context.Context) ([]model.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeStore) FindWithRooms(_ context.Context, hotelID string) (*model.Hotel, error) {
	for _, h := range f.hotels {
		if h.ID == hotelID {
			return &h, nil
		}
	}
	return nil, model.NotFound("hotel not found")
}

func (f *fakeStore) userBookings(userID string) []model.Booking {
	var out []model.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (f *fakeStore) withRoom(b model.Booking) *model.Booking {
	room := f.rooms[b.RoomID]
	b.Room = &room
	return &b
}

// bookingStore adapts fakeStore to BookingStore; the method names collide
// with the enrollment and ticket stores.
type bookingStore struct{ *fakeStore }

func (s bookingStore) Create(_ context.Context, userID, roomID string) (*model.Booking, error) {
	s.createCalls++
	s.seq++
	b := model.Booking{ID: fmt.Sprintf("booking-%d", s.seq), UserID: userID, RoomID: roomID}
	s.bookings = append(s.bookings, b)
	return s.withRoom(b), nil
}

func (s bookingStore) FindByUser(_ context.Context, userID string) (*model.Booking, error) {
	if bs := s.userBookings(userID); len(bs) > 0 {
		return s.withRoom(bs[0]), nil
	}
	return nil, model.NotFound("booking not found")
}

func (s bookingStore) Update(_ context.Context, bookingID, roomID string) (*model.Booking, error) {
	s.updateCalls++
	for i := range s.bookings {
		if s.bookings[i].ID == bookingID {
			s.bookings[i].RoomID = roomID
			return s.withRoom(s.bookings[i]), nil
		}
	}
	return nil, model.NotFound("booking not found")
}

func (s bookingStore) LockUser(context.Context, string) error {
	s.lockCalls++
	if !s.inTx {
		s.unlocked++
	}
	return nil
}

// fakeTx snapshots bookings and restores them when fn fails.
type fakeTx struct {
	store *fakeStore
	calls int
}

func (f *fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	snapshot := append([]model.Booking(nil), f.store.bookings...)
	f.store.inTx = true
	defer func() { f.store.inTx = false }()
	if err := fn(ctx); err != nil {
		f.store.bookings = snapshot
		return err
	}
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []model.BookingEvent
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, e model.BookingEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
	return n.err
}

type fixture struct {
	store    *fakeStore
	tx       *fakeTx
	notifier *recordingNotifier
	authz    *BookingAuthorizer
	svc      *BookingService
}

func newFixture(opts ...AuthorizerOption) *fixture {
	store := newFakeStore()
	tx := &fakeTx{store: store}
	notifier := &recordingNotifier{}
	bookings := bookingStore{store}
	authz := NewBookingAuthorizer(
		NewEntitlementResolver(store, store),
		NewCapacityGuard(store),
		bookings,
		opts...,
	)
	return &fixture{
		store:    store,
		tx:       tx,
		notifier: notifier,
		authz:    authz,
		svc:      NewBookingService(tx, authz, bookings, WithNotifier(notifier)),
	}
}
