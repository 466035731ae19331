package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesafina/mesafina-backend/pkg/enums"
)

// Reservation is the lifecycle record behind a booking code. Slot and
// seating details are denormalized so the audit trail survives claim churn.
type Reservation struct {
	ID           uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	BookingCode  string                  `gorm:"column:booking_code;not null;uniqueIndex"`
	RestaurantID uuid.UUID               `gorm:"column:restaurant_id;type:uuid;not null;index:idx_reservations_restaurant_slot"`
	SlotStart    time.Time               `gorm:"column:slot_start;not null;index:idx_reservations_restaurant_slot"`
	SeatingType  string                  `gorm:"column:seating_type;not null"`
	PartySize    int                     `gorm:"column:party_size;not null"`
	CustomerRef  string                  `gorm:"column:customer_ref;not null;index"`
	ClaimID      *uuid.UUID              `gorm:"column:claim_id;type:uuid"`
	Status       enums.ReservationStatus `gorm:"column:status;type:reservation_status_enum;not null"`
	CreatedAt    time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
