package reservations

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesafina/mesafina-backend/pkg/db/models"
	"github.com/mesafina/mesafina-backend/pkg/enums"
)

type ReservationDTO struct {
	BookingCode  string                  `json:"bookingCode"`
	RestaurantID uuid.UUID               `json:"restaurantId"`
	SlotStart    time.Time               `json:"slotStart"`
	SeatingType  string                  `json:"seatingType,omitempty"`
	PartySize    int                     `json:"partySize"`
	CustomerRef  string                  `json:"customerRef"`
	Status       enums.ReservationStatus `json:"status"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

func FromModel(m *models.Reservation) ReservationDTO {
	return ReservationDTO{
		BookingCode:  m.BookingCode,
		RestaurantID: m.RestaurantID,
		SlotStart:    m.SlotStart,
		SeatingType:  m.SeatingType,
		PartySize:    m.PartySize,
		CustomerRef:  m.CustomerRef,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
