package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRecord tracks total/reserved seats per (restaurant, slot, seating type).
// The reserved counter only moves through guarded updates so that
// 0 <= seats_reserved <= capacity_total holds under concurrent writers.
type AvailabilityRecord struct {
	RestaurantID  uuid.UUID `gorm:"column:restaurant_id;type:uuid;primaryKey"`
	SlotStart     time.Time `gorm:"column:slot_start;primaryKey"`
	SeatingType   string    `gorm:"column:seating_type;primaryKey"`
	CapacityTotal int       `gorm:"column:capacity_total;not null"`
	SeatsReserved int       `gorm:"column:seats_reserved;not null;default:0"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
