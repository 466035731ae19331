package payloads

import (
	"time"

	"github.com/google/uuid"
)

// ReservationConfirmedEvent is emitted when a reservation is first booked.
type ReservationConfirmedEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	BookingCode   string    `json:"bookingCode"`
	RestaurantID  uuid.UUID `json:"restaurantId"`
	SlotStart     time.Time `json:"slotStart"`
	SeatingType   string    `json:"seatingType,omitempty"`
	PartySize     int       `json:"partySize"`
	CustomerRef   string    `json:"customerRef"`
}

// ReservationModifiedEvent is emitted when an amend succeeds. Previous slot
// details are carried so downstream consumers can reconcile capacity views.
type ReservationModifiedEvent struct {
	ReservationID   uuid.UUID `json:"reservationId"`
	BookingCode     string    `json:"bookingCode"`
	RestaurantID    uuid.UUID `json:"restaurantId"`
	SlotStart       time.Time `json:"slotStart"`
	SeatingType     string    `json:"seatingType,omitempty"`
	PartySize       int       `json:"partySize"`
	PrevSlotStart   time.Time `json:"prevSlotStart"`
	PrevSeatingType string    `json:"prevSeatingType,omitempty"`
	PrevPartySize   int       `json:"prevPartySize"`
	CustomerRef     string    `json:"customerRef"`
}

// ReservationCancelledEvent is emitted when a reservation is cancelled.
type ReservationCancelledEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	BookingCode   string    `json:"bookingCode"`
	RestaurantID  uuid.UUID `json:"restaurantId"`
	SlotStart     time.Time `json:"slotStart"`
	SeatingType   string    `json:"seatingType,omitempty"`
	PartySize     int       `json:"partySize"`
	CustomerRef   string    `json:"customerRef"`
}
