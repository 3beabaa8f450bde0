// Package model defines the core domain types for the conference lodging system.
package model

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// Enrollment is a person's registration for the event. It belongs to exactly one user.
type Enrollment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// Address is the mailing address of an enrollment. Only the first one is authoritative.
type Address struct {
	ID            string `json:"id"`
	CEP           string `json:"cep"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	Number        string `json:"number"`
	Neighborhood  string `json:"neighborhood"`
	AddressDetail string `json:"addressDetail,omitempty"`
}

// TicketType is a catalog entry describing what a ticket entitles its holder to.
type TicketType struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

// Ticket belongs to exactly one enrollment and carries its type.
type Ticket struct {
	ID           string       `json:"id"`
	EnrollmentID string       `json:"enrollmentId"`
	Status       TicketStatus `json:"status"`
	Type         TicketType   `json:"ticketType"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Hotel groups bookable rooms.
type Hotel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Rooms     []Room    `json:"rooms,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Room is a lodging unit with a fixed occupant capacity.
type Room struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Occupants []Booking `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// OccupantCount returns the number of bookings currently held on the room.
func (r *Room) OccupantCount() int {
	return len(r.Occupants)
}

// HasVacancy reports whether one more occupant can be admitted.
// A room with zero capacity never has a vacancy.
func (r *Room) HasVacancy() bool {
	return r.OccupantCount() < r.Capacity
}

// Booking assigns one user to one room.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	RoomID    string    `json:"roomId"`
	Room      *Room     `json:"room,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entitlement is the data the booking policy classifies: the user's
// enrollment, ticket and the flags of the ticket's type.
type Entitlement struct {
	Enrollment Enrollment
	Ticket     Ticket
}

// Status returns the ticket's payment status.
func (e Entitlement) Status() TicketStatus { return e.Ticket.Status }

// IsRemote reports whether the ticket is for remote attendance only.
func (e Entitlement) IsRemote() bool { return e.Ticket.Type.IsRemote }

// IncludesHotel reports whether the ticket type includes lodging.
func (e Entitlement) IncludesHotel() bool { return e.Ticket.Type.IncludesHotel }

// BookingRequest is the payload for creating or moving a booking.
type BookingRequest struct {
	RoomID string `json:"roomId"`
}

// BookingResult is returned by create and update.
type BookingResult struct {
	BookingID string `json:"bookingId"`
}

// BookingView is returned when a user reads their booking.
type BookingView struct {
	ID   string `json:"id"`
	Room Room   `json:"room"`
}

// ReserveTicketRequest is the payload for reserving a ticket.
type ReserveTicketRequest struct {
	TicketTypeID string `json:"ticketTypeId"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Booking event types published after a committed write.
const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
)

// BookingEvent describes a committed booking write.
type BookingEvent struct {
	Type       string    `json:"-"`
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId"`
	RoomID     string    `json:"roomId"`
	OccurredAt time.Time `json:"occurredAt"`
}
